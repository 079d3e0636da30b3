package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rmehta/stock-analysis-backend/internal/api/handlers"
	"github.com/rmehta/stock-analysis-backend/internal/model"
	"github.com/rmehta/stock-analysis-backend/internal/testutil"
)

// TestStockHandler_CreateStock tests the POST /api/stocks endpoint.
//
// WHY: Stock creation is the entry point for everything else; a stock with
// an empty name or negative prices would poison every later listing.
func TestStockHandler_CreateStock(t *testing.T) {
	t.Run("creates a stock and returns 201", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestStockService(t, db)
		handler := handlers.NewStockHandler(svc)

		body := strings.NewReader(`{
			"name": "Bharti Airtel",
			"sectorName": "Telecom",
			"currentPrice": 850.5
		}`)
		req := httptest.NewRequest(http.MethodPost, "/api/stocks", body)
		w := httptest.NewRecorder()

		// Execute
		handler.CreateStock(w, req)

		// Assert
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var stock model.Stock
		if err := json.NewDecoder(w.Body).Decode(&stock); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if stock.ID == "" {
			t.Error("Expected a generated stock ID")
		}
		if stock.Name != "Bharti Airtel" {
			t.Errorf("Expected name 'Bharti Airtel', got %q", stock.Name)
		}

		testutil.AssertRowCount(t, db, "stock", 1)
	})

	t.Run("returns 400 for a missing name", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestStockService(t, db)
		handler := handlers.NewStockHandler(svc)

		body := strings.NewReader(`{"currentPrice": 850.5}`)
		req := httptest.NewRequest(http.MethodPost, "/api/stocks", body)
		w := httptest.NewRecorder()

		// Execute
		handler.CreateStock(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}

		testutil.AssertRowCount(t, db, "stock", 0)
	})
}

// TestStockHandler_GetStock tests the GET /api/stocks/{uuid} endpoint.
//
// WHY: Missing rows must map to 404, not 500, so the frontend can handle a
// deleted stock gracefully.
func TestStockHandler_GetStock(t *testing.T) {
	t.Run("returns an existing stock", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestStockService(t, db)
		handler := handlers.NewStockHandler(svc)

		stock := testutil.NewStock().WithName("Bharti Airtel").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/stocks/"+stock.ID,
			map[string]string{"uuid": stock.ID})
		w := httptest.NewRecorder()

		// Execute
		handler.GetStock(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response model.Stock
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.ID != stock.ID {
			t.Errorf("Expected stock ID %s, got %s", stock.ID, response.ID)
		}
	})

	t.Run("returns 404 for an unknown stock", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestStockService(t, db)
		handler := handlers.NewStockHandler(svc)

		unknownID := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/stocks/"+unknownID,
			map[string]string{"uuid": unknownID})
		w := httptest.NewRecorder()

		// Execute
		handler.GetStock(w, req)

		// Assert
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// TestStockHandler_UpdateStock tests the PUT /api/stocks/{uuid} endpoint.
//
// WHY: Updates are partial; fields left out of the body must keep their
// stored values instead of being zeroed.
func TestStockHandler_UpdateStock(t *testing.T) {
	t.Run("updates only the provided fields", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestStockService(t, db)
		handler := handlers.NewStockHandler(svc)

		stock := testutil.NewStock().WithName("Bharti Airtel").WithSector("Telecom").Build(t, db)

		body := strings.NewReader(`{"currentPrice": 900}`)
		req := httptest.NewRequest(http.MethodPut, "/api/stocks/"+stock.ID, body)
		req = testutil.WithURLParams(req, map[string]string{"uuid": stock.ID})
		w := httptest.NewRecorder()

		// Execute
		handler.UpdateStock(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Stock
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.CurrentPrice != 900 {
			t.Errorf("Expected current price 900, got %v", response.CurrentPrice)
		}
		if response.Name != stock.Name || response.SectorName != "Telecom" {
			t.Error("Expected untouched fields to keep their stored values")
		}
	})
}
