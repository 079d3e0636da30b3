package model

import "time"

// Transaction types. Corrections are modelled as delete + recreate,
// so there is no update path for transactions.
const (
	TransactionBuy  = "buy"
	TransactionSell = "sell"
)

// Transaction represents a single buy or sell event against a stock.
// Used internally for position calculations and returned as-is by the API.
type Transaction struct {
	ID        string    `json:"id"`
	StockID   string    `json:"stockId"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// TransactionResponse represents a transaction with enriched data for API
// responses. Includes the stock name for display.
type TransactionResponse struct {
	ID        string    `json:"id"`
	StockID   string    `json:"stockId"`
	StockName string    `json:"stockName"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
}
