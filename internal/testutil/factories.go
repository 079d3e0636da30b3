package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/model"
)

// StockBuilder provides a fluent interface for creating test stocks.
//
// Example usage:
//
//	// Simple creation with defaults
//	stock := testutil.NewStock().Build(t, db)
//
//	// Customized stock
//	stock := testutil.NewStock().
//	    WithName("Reliance Industries").
//	    WithSector("Energy").
//	    WithTarget(3000, "2026-12-31").
//	    Build(t, db)
type StockBuilder struct {
	ID              string
	Name            string
	SectorName      string
	CurrentPrice    float64
	CurrentRatio    float64
	DebtEquityRatio float64
	PriceBookRatio  float64
	TargetPrice     float64
	TargetDate      string
}

// NewStock creates a StockBuilder with sensible defaults.
func NewStock() *StockBuilder {
	return &StockBuilder{
		ID:           MakeID(),
		Name:         MakeStockName("Test Stock"),
		SectorName:   "Technology",
		CurrentPrice: 100.0,
		CurrentRatio: 1.5,
	}
}

// WithID sets a custom ID.
func (b *StockBuilder) WithID(id string) *StockBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *StockBuilder) WithName(name string) *StockBuilder {
	b.Name = name
	return b
}

// WithSector sets a custom sector name.
func (b *StockBuilder) WithSector(sector string) *StockBuilder {
	b.SectorName = sector
	return b
}

// WithCurrentPrice sets the current market price.
func (b *StockBuilder) WithCurrentPrice(price float64) *StockBuilder {
	b.CurrentPrice = price
	return b
}

// WithTarget sets the target price and date. The date is stored as-is, so
// tests can deliberately insert unparseable values.
func (b *StockBuilder) WithTarget(price float64, date string) *StockBuilder {
	b.TargetPrice = price
	b.TargetDate = date
	return b
}

// Build creates the stock in the database and returns it.
func (b *StockBuilder) Build(t *testing.T, db *sql.DB) model.Stock {
	t.Helper()

	query := `
		INSERT INTO stock (
			id, name, sector_name, current_price, current_ratio,
			debt_equity_ratio, price_book_ratio, target_price, target_date, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()
	_, err := db.Exec(query,
		b.ID, b.Name, b.SectorName, b.CurrentPrice, b.CurrentRatio,
		b.DebtEquityRatio, b.PriceBookRatio, b.TargetPrice, b.TargetDate,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test stock: %v", err)
	}

	return model.Stock{
		ID:              b.ID,
		Name:            b.Name,
		SectorName:      b.SectorName,
		CurrentPrice:    b.CurrentPrice,
		CurrentRatio:    b.CurrentRatio,
		DebtEquityRatio: b.DebtEquityRatio,
		PriceBookRatio:  b.PriceBookRatio,
		TargetPrice:     b.TargetPrice,
		TargetDate:      b.TargetDate,
		CreatedAt:       createdAt,
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	tx := testutil.NewTransaction(stock.ID).
//	    Sell().
//	    WithQuantity(5).
//	    WithPrice(300).
//	    WithDate("2024-02-01").
//	    Build(t, db)
type TransactionBuilder struct {
	ID       string
	StockID  string
	Date     string
	Type     string
	Quantity float64
	Price    float64
}

// NewTransaction creates a TransactionBuilder for the given stock,
// defaulting to a buy of 10 shares at 100.
func NewTransaction(stockID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:       MakeID(),
		StockID:  stockID,
		Date:     "2024-01-01",
		Type:     model.TransactionBuy,
		Quantity: 10,
		Price:    100.0,
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDate sets the transaction date (YYYY-MM-DD).
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// WithQuantity sets the number of shares.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithPrice sets the per-share price.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.Price = price
	return b
}

// Buy marks the transaction as a buy.
func (b *TransactionBuilder) Buy() *TransactionBuilder {
	b.Type = model.TransactionBuy
	return b
}

// Sell marks the transaction as a sell.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Type = model.TransactionSell
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO stock_transaction (id, stock_id, date, type, quantity, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()
	_, err := db.Exec(query,
		b.ID, b.StockID, b.Date, b.Type, b.Quantity, b.Price,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		t.Fatalf("Invalid test transaction date %q: %v", b.Date, err)
	}

	return model.Transaction{
		ID:        b.ID,
		StockID:   b.StockID,
		Date:      date,
		Type:      b.Type,
		Quantity:  b.Quantity,
		Price:     b.Price,
		CreatedAt: createdAt,
	}
}

// SoldShareBuilder provides a fluent interface for creating sold share records.
//
// Example usage:
//
//	lot := testutil.NewSoldShare(stock.ID).
//	    WithQuantity(10).
//	    WithPrices(100, 150).
//	    Build(t, db)
type SoldShareBuilder struct {
	ID            string
	StockID       string
	Quantity      float64
	PurchasePrice float64
	SellPrice     float64
	PurchaseDate  string
	SellDate      string
}

// NewSoldShare creates a SoldShareBuilder for the given stock, defaulting
// to a profitable round trip of 10 shares bought at 100 and sold at 150.
func NewSoldShare(stockID string) *SoldShareBuilder {
	return &SoldShareBuilder{
		ID:            MakeID(),
		StockID:       stockID,
		Quantity:      10,
		PurchasePrice: 100.0,
		SellPrice:     150.0,
		PurchaseDate:  "2024-01-01",
		SellDate:      "2024-06-01",
	}
}

// WithID sets a custom ID.
func (b *SoldShareBuilder) WithID(id string) *SoldShareBuilder {
	b.ID = id
	return b
}

// WithQuantity sets the number of shares in the lot.
func (b *SoldShareBuilder) WithQuantity(quantity float64) *SoldShareBuilder {
	b.Quantity = quantity
	return b
}

// WithPrices sets the purchase and sell prices.
func (b *SoldShareBuilder) WithPrices(purchase, sell float64) *SoldShareBuilder {
	b.PurchasePrice = purchase
	b.SellPrice = sell
	return b
}

// WithDates sets the purchase and sell dates (YYYY-MM-DD).
func (b *SoldShareBuilder) WithDates(purchase, sell string) *SoldShareBuilder {
	b.PurchaseDate = purchase
	b.SellDate = sell
	return b
}

// Build creates the sold share record in the database and returns it.
// ProfitOrLoss is computed the same way the service computes it at creation.
func (b *SoldShareBuilder) Build(t *testing.T, db *sql.DB) model.SoldShare {
	t.Helper()

	profitOrLoss := b.Quantity * (b.SellPrice - b.PurchasePrice)

	query := `
		INSERT INTO sold_share (
			id, stock_id, quantity, purchase_price, sell_price,
			purchase_date, sell_date, profit_or_loss, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()
	_, err := db.Exec(query,
		b.ID, b.StockID, b.Quantity, b.PurchasePrice, b.SellPrice,
		b.PurchaseDate, b.SellDate, profitOrLoss,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test sold share: %v", err)
	}

	purchaseDate, err := time.Parse("2006-01-02", b.PurchaseDate)
	if err != nil {
		t.Fatalf("Invalid test purchase date %q: %v", b.PurchaseDate, err)
	}
	sellDate, err := time.Parse("2006-01-02", b.SellDate)
	if err != nil {
		t.Fatalf("Invalid test sell date %q: %v", b.SellDate, err)
	}

	return model.SoldShare{
		ID:            b.ID,
		StockID:       b.StockID,
		Quantity:      b.Quantity,
		PurchasePrice: b.PurchasePrice,
		SellPrice:     b.SellPrice,
		PurchaseDate:  purchaseDate,
		SellDate:      sellDate,
		ProfitOrLoss:  profitOrLoss,
		CreatedAt:     createdAt,
	}
}

// Convenience functions

// CreateStock creates a stock with the given name and default values.
func CreateStock(t *testing.T, db *sql.DB, name string) model.Stock {
	t.Helper()
	return NewStock().WithName(name).Build(t, db)
}

// CreateBuy records a buy transaction for the stock.
func CreateBuy(t *testing.T, db *sql.DB, stockID, date string, quantity, price float64) model.Transaction {
	t.Helper()
	return NewTransaction(stockID).Buy().WithDate(date).WithQuantity(quantity).WithPrice(price).Build(t, db)
}

// CreateSell records a sell transaction for the stock.
func CreateSell(t *testing.T, db *sql.DB, stockID, date string, quantity, price float64) model.Transaction {
	t.Helper()
	return NewTransaction(stockID).Sell().WithDate(date).WithQuantity(quantity).WithPrice(price).Build(t, db)
}
