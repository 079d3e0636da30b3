package model

import "time"

// SoldShare is an explicitly recorded completed round-trip trade.
// ProfitOrLoss is computed once when the record is created and stored;
// it is never derived from the transaction history. Sold shares are a
// separate workflow from transactions: recording a sell transaction does
// not create a SoldShare, and vice versa.
type SoldShare struct {
	ID            string    `json:"id"`
	StockID       string    `json:"stockId"`
	StockName     string    `json:"stockName,omitempty"`
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchasePrice"`
	SellPrice     float64   `json:"sellPrice"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	SellDate      time.Time `json:"sellDate"`
	ProfitOrLoss  float64   `json:"profitOrLoss"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// ProfitLossReport aggregates all sold share records into summary figures.
// Lots with exactly zero profit/loss count toward TotalTrades only.
type ProfitLossReport struct {
	TotalProfitLoss       float64 `json:"totalProfitLoss"`
	TotalProfit           float64 `json:"totalProfit"`
	TotalLoss             float64 `json:"totalLoss"`
	TotalProfitableShares int     `json:"totalProfitableShares"`
	TotalLossShares       int     `json:"totalLossShares"`
	TotalTrades           int     `json:"totalTrades"`
}
