package service_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/testutil"
)

// TestPortfolioService_GetPositions tests deriving positions from the
// transaction history.
//
// WHY: Positions are never stored, they are recomputed from transactions on
// every request. This ensures the fold over the history produces the right
// totals and that stock metadata and targets get attached.
func TestPortfolioService_GetPositions(t *testing.T) {
	t.Run("returns empty slice when no transactions exist", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		// A stock without transactions must not produce a position
		testutil.CreateStock(t, db, "Untraded Stock")

		// Execute
		positions, err := svc.GetPositions(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetPositions() returned unexpected error: %v", err)
		}

		if len(positions) != 0 {
			t.Errorf("Expected empty slice, got %d positions", len(positions))
		}
	})

	t.Run("computes totals for a buy and sell sequence", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		stock := testutil.NewStock().WithName("Infosys").Build(t, db)
		testutil.CreateBuy(t, db, stock.ID, "2024-01-01", 10, 100)
		testutil.CreateBuy(t, db, stock.ID, "2024-01-15", 10, 200)
		testutil.CreateSell(t, db, stock.ID, "2024-02-01", 5, 300)

		// Execute
		positions, err := svc.GetPositions(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetPositions() returned unexpected error: %v", err)
		}

		if len(positions) != 1 {
			t.Fatalf("Expected 1 position, got %d", len(positions))
		}

		pos := positions[0]
		if pos.StockID != stock.ID {
			t.Errorf("Expected stock ID %s, got %s", stock.ID, pos.StockID)
		}
		if pos.Stock == nil || pos.Stock.Name != stock.Name {
			t.Error("Expected stock metadata to be attached to the position")
		}
		if pos.TotalQuantity != 15 {
			t.Errorf("Expected total quantity 15, got %v", pos.TotalQuantity)
		}
		if pos.AveragePrice != 150 {
			t.Errorf("Expected average price 150, got %v", pos.AveragePrice)
		}
		if pos.TotalInvestment != 2250 {
			t.Errorf("Expected total investment 2250, got %v", pos.TotalInvestment)
		}
		if math.Abs(pos.RealizedPL-750) > 1e-9 {
			t.Errorf("Expected realized P/L 750, got %v", pos.RealizedPL)
		}
	})

	t.Run("attaches target fields from the stock", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		stock := testutil.NewStock().WithTarget(500, "2026-12-31").Build(t, db)
		testutil.CreateBuy(t, db, stock.ID, "2024-01-01", 10, 100)

		// Execute
		positions, err := svc.GetPositions(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetPositions() returned unexpected error: %v", err)
		}

		if len(positions) != 1 {
			t.Fatalf("Expected 1 position, got %d", len(positions))
		}
		if positions[0].TargetPrice != 500 {
			t.Errorf("Expected target price 500, got %v", positions[0].TargetPrice)
		}
		if positions[0].TargetDate != "2026-12-31" {
			t.Errorf("Expected target date 2026-12-31, got %q", positions[0].TargetDate)
		}
	})

	t.Run("returns positions sorted by stock name", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		zeta := testutil.NewStock().WithName("Zeta Corp").Build(t, db)
		alpha := testutil.NewStock().WithName("Alpha Ltd").Build(t, db)
		testutil.CreateBuy(t, db, zeta.ID, "2024-01-01", 5, 50)
		testutil.CreateBuy(t, db, alpha.ID, "2024-01-01", 5, 50)

		// Execute
		positions, err := svc.GetPositions(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetPositions() returned unexpected error: %v", err)
		}

		if len(positions) != 2 {
			t.Fatalf("Expected 2 positions, got %d", len(positions))
		}
		if positions[0].StockID != alpha.ID {
			t.Error("Expected Alpha Ltd to sort before Zeta Corp")
		}
	})
}

// TestPortfolioService_GetNearTarget tests the near-target filter.
//
// WHY: The scheduled scan and the near-target endpoint both rely on this
// path. Positions without a parseable target date must drop out silently
// instead of failing the whole listing.
func TestPortfolioService_GetNearTarget(t *testing.T) {
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("includes only targets within the horizon", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		near := testutil.NewStock().WithName("Near").WithTarget(100, "2024-01-03").Build(t, db)
		far := testutil.NewStock().WithName("Far").WithTarget(100, "2024-03-01").Build(t, db)
		noDate := testutil.NewStock().WithName("NoDate").WithTarget(100, "").Build(t, db)
		badDate := testutil.NewStock().WithName("BadDate").WithTarget(100, "soon-ish").Build(t, db)

		for _, s := range []string{near.ID, far.ID, noDate.ID, badDate.ID} {
			testutil.CreateBuy(t, db, s, "2023-06-01", 10, 100)
		}

		// Execute
		result, err := svc.GetNearTarget(context.Background(), 7, asOf)

		// Assert
		if err != nil {
			t.Fatalf("GetNearTarget() returned unexpected error: %v", err)
		}

		if len(result) != 1 {
			t.Fatalf("Expected 1 near-target position, got %d", len(result))
		}
		if result[0].StockID != near.ID {
			t.Errorf("Expected stock %s, got %s", near.ID, result[0].StockID)
		}
		if result[0].DaysRemaining != 2 {
			t.Errorf("Expected 2 days remaining, got %d", result[0].DaysRemaining)
		}
		if result[0].Urgency != "critical" {
			t.Errorf("Expected urgency critical, got %q", result[0].Urgency)
		}
	})

	t.Run("sorts most urgent first", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		later := testutil.NewStock().WithName("Later").WithTarget(100, "2024-01-10").Build(t, db)
		sooner := testutil.NewStock().WithName("Sooner").WithTarget(100, "2024-01-02").Build(t, db)
		testutil.CreateBuy(t, db, later.ID, "2023-06-01", 10, 100)
		testutil.CreateBuy(t, db, sooner.ID, "2023-06-01", 10, 100)

		// Execute
		result, err := svc.GetNearTarget(context.Background(), 30, asOf)

		// Assert
		if err != nil {
			t.Fatalf("GetNearTarget() returned unexpected error: %v", err)
		}

		if len(result) != 2 {
			t.Fatalf("Expected 2 near-target positions, got %d", len(result))
		}
		if result[0].StockID != sooner.ID {
			t.Error("Expected the sooner target to sort first")
		}
	})
}

// TestPortfolioService_UpdateStockTarget tests setting a target on a stock.
//
// WHY: Target updates feed both the near-target endpoint and the scheduled
// scan, so the new values must round-trip through the repository.
func TestPortfolioService_UpdateStockTarget(t *testing.T) {
	t.Run("persists the new target", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		stock := testutil.NewStock().Build(t, db)
		testutil.CreateBuy(t, db, stock.ID, "2024-01-01", 10, 100)

		// Execute
		err := svc.UpdateStockTarget(context.Background(), stock.ID, 999, "2027-01-01")

		// Assert
		if err != nil {
			t.Fatalf("UpdateStockTarget() returned unexpected error: %v", err)
		}

		positions, err := svc.GetPositions(context.Background())
		if err != nil {
			t.Fatalf("GetPositions() returned unexpected error: %v", err)
		}
		if len(positions) != 1 {
			t.Fatalf("Expected 1 position, got %d", len(positions))
		}
		if positions[0].TargetPrice != 999 || positions[0].TargetDate != "2027-01-01" {
			t.Errorf("Expected target (999, 2027-01-01), got (%v, %q)",
				positions[0].TargetPrice, positions[0].TargetDate)
		}
	})

	t.Run("returns not found for unknown stock", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		// Execute
		err := svc.UpdateStockTarget(context.Background(), testutil.MakeID(), 100, "2027-01-01")

		// Assert
		if err == nil {
			t.Fatal("Expected error for unknown stock, got nil")
		}
	})
}
