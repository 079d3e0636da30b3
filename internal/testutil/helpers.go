package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/rmehta/stock-analysis-backend/internal/repository"
	"github.com/rmehta/stock-analysis-backend/internal/service"
)

func NewTestStockService(t *testing.T, db *sql.DB) *service.StockService {
	t.Helper()

	stockRepo := repository.NewStockRepository(db)

	return service.NewStockService(stockRepo)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	stockRepo := repository.NewStockRepository(db)

	return service.NewTransactionService(
		transactionRepo,
		stockRepo,
	)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	stockRepo := repository.NewStockRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewPortfolioService(
		stockRepo,
		transactionRepo,
	)
}

func NewTestSoldShareService(t *testing.T, db *sql.DB) *service.SoldShareService {
	t.Helper()

	soldShareRepo := repository.NewSoldShareRepository(db)
	stockRepo := repository.NewStockRepository(db)

	return service.NewSoldShareService(
		soldShareRepo,
		stockRepo,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeStockName generates a unique stock name for testing.
//
// Example usage:
//
//	name := testutil.MakeStockName("Tata Motors")
//	// Returns: "Tata Motors ABC123"
func MakeStockName(base string) string {
	if base == "" {
		base = "Stock"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// CommonSectors contains frequently used sector names for test data.
var CommonSectors = []string{"Technology", "Energy", "Banking", "Pharma", "FMCG", "Auto"}

// RandomSector returns a random sector from CommonSectors.
func RandomSector() string {
	//nolint:gosec // G404: Using math/rand for test data generation is acceptable
	return CommonSectors[rand.Intn(len(CommonSectors))]
}
