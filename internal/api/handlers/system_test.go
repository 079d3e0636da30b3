package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rmehta/stock-analysis-backend/internal/api/handlers"
	"github.com/rmehta/stock-analysis-backend/internal/testutil"
)

// TestSystemHandler_Health tests the GET /api/system/health endpoint.
//
// WHY: Deployment probes depend on this endpoint; a healthy database must
// report 200 and the expected body shape.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("returns healthy for a connected database", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		handler := handlers.NewSystemHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Health(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Status != "healthy" || response.Database != "connected" {
			t.Errorf("Expected healthy/connected, got %s/%s", response.Status, response.Database)
		}
	})

	t.Run("returns 503 for a closed database", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		handler := handlers.NewSystemHandler(svc)

		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Health(w, req)

		// Assert
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", w.Code)
		}
	})
}

// TestSystemHandler_Version tests the GET /api/system/version endpoint.
//
// WHY: The schema version comes from the migration bookkeeping; the endpoint
// proves migrations actually ran against the connected database.
func TestSystemHandler_Version(t *testing.T) {
	t.Run("reports the applied schema version", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		handler := handlers.NewSystemHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Version(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response handlers.VersionInfoResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.AppVersion == "" {
			t.Error("Expected a non-empty app version")
		}
		if response.DbVersion == "0" || response.DbVersion == "" {
			t.Errorf("Expected a non-zero schema version, got %q", response.DbVersion)
		}
	})
}
