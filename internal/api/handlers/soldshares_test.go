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

// TestSoldShareHandler_ProfitLossReport tests the GET /api/soldshares/profit-loss endpoint.
//
// WHY: The report is the main reason sold shares exist at all. The summary
// figures must reflect the stored per-lot results, including flat lots that
// count as trades only.
func TestSoldShareHandler_ProfitLossReport(t *testing.T) {
	t.Run("returns the aggregated report", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSoldShareService(t, db)
		handler := handlers.NewSoldShareHandler(svc)

		stock := testutil.CreateStock(t, db, "Tata Steel")
		testutil.NewSoldShare(stock.ID).WithQuantity(10).WithPrices(100, 150).Build(t, db) // +500
		testutil.NewSoldShare(stock.ID).WithQuantity(5).WithPrices(200, 160).Build(t, db)  // -200
		testutil.NewSoldShare(stock.ID).WithQuantity(3).WithPrices(120, 120).Build(t, db)  // flat

		req := httptest.NewRequest(http.MethodGet, "/api/soldshares/profit-loss", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.ProfitLossReport(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var report model.ProfitLossReport
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if report.TotalProfitLoss != 300 {
			t.Errorf("Expected total P/L 300, got %v", report.TotalProfitLoss)
		}
		if report.TotalTrades != 3 {
			t.Errorf("Expected 3 trades, got %d", report.TotalTrades)
		}
		if report.TotalProfitableShares != 1 || report.TotalLossShares != 1 {
			t.Errorf("Expected 1 profitable and 1 losing lot, got %d and %d",
				report.TotalProfitableShares, report.TotalLossShares)
		}
	})

	t.Run("returns a zero report when no records exist", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSoldShareService(t, db)
		handler := handlers.NewSoldShareHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/soldshares/profit-loss", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.ProfitLossReport(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var report model.ProfitLossReport
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if report.TotalTrades != 0 {
			t.Errorf("Expected zero report, got %+v", report)
		}
	})
}

// TestSoldShareHandler_CreateSoldShare tests the POST /api/soldshares endpoint.
//
// WHY: The handler owns input validation; malformed bodies and inverted
// date ranges must never reach the service layer.
func TestSoldShareHandler_CreateSoldShare(t *testing.T) {
	t.Run("creates a record and returns 201", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSoldShareService(t, db)
		handler := handlers.NewSoldShareHandler(svc)

		stock := testutil.CreateStock(t, db, "Tata Steel")

		body := strings.NewReader(`{
			"stockId": "` + stock.ID + `",
			"quantity": 10,
			"purchasePrice": 100,
			"sellPrice": 150,
			"purchaseDate": "2024-01-01",
			"sellDate": "2024-06-01"
		}`)
		req := httptest.NewRequest(http.MethodPost, "/api/soldshares", body)
		w := httptest.NewRecorder()

		// Execute
		handler.CreateSoldShare(w, req)

		// Assert
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var share model.SoldShare
		if err := json.NewDecoder(w.Body).Decode(&share); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if share.ProfitOrLoss != 500 {
			t.Errorf("Expected profit 500, got %v", share.ProfitOrLoss)
		}

		testutil.AssertRowCount(t, db, "sold_share", 1)
	})

	t.Run("returns 400 for a malformed body", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSoldShareService(t, db)
		handler := handlers.NewSoldShareHandler(svc)

		body := strings.NewReader(`{not json`)
		req := httptest.NewRequest(http.MethodPost, "/api/soldshares", body)
		w := httptest.NewRecorder()

		// Execute
		handler.CreateSoldShare(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 when the sell date precedes the purchase date", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSoldShareService(t, db)
		handler := handlers.NewSoldShareHandler(svc)

		stock := testutil.CreateStock(t, db, "Tata Steel")

		body := strings.NewReader(`{
			"stockId": "` + stock.ID + `",
			"quantity": 10,
			"purchasePrice": 100,
			"sellPrice": 150,
			"purchaseDate": "2024-06-01",
			"sellDate": "2024-01-01"
		}`)
		req := httptest.NewRequest(http.MethodPost, "/api/soldshares", body)
		w := httptest.NewRecorder()

		// Execute
		handler.CreateSoldShare(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}

		testutil.AssertRowCount(t, db, "sold_share", 0)
	})
}
