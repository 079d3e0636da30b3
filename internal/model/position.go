package model

// Position is the derived aggregate state of one stock's holdings.
// It is computed from the transaction history on every read and never
// persisted; see the portfolio package for the aggregation rules.
type Position struct {
	StockID string `json:"stockId"`
	Stock   *Stock `json:"stock,omitempty"`

	// Transactions holds the events that produced this position, in the
	// order they were folded. Kept for display and audit, not reprocessed.
	Transactions []Transaction `json:"transactions"`

	TotalQuantity     float64 `json:"totalQuantity"`
	TotalBuyQuantity  float64 `json:"totalBuyQuantity"`
	TotalBuyValue     float64 `json:"totalBuyValue"`
	TotalSellQuantity float64 `json:"totalSellQuantity"`
	TotalSellValue    float64 `json:"totalSellValue"`

	// AveragePrice is the weighted average cost per share across all buys.
	// It is a cost basis: sells do not move it.
	AveragePrice float64 `json:"averagePrice"`

	// TotalInvestment is the capital currently at risk. Sells reduce it at
	// the running cost basis, not at the sale price.
	TotalInvestment float64 `json:"totalInvestment"`

	// RealizedPL is the cumulative profit or loss crystallized by sells,
	// measured against the final average buy price.
	RealizedPL float64 `json:"realizedPL"`

	TargetPrice float64 `json:"targetPrice"`
	TargetDate  string  `json:"targetDate"`
}

// NearTargetPosition annotates a position with how close its target date is.
type NearTargetPosition struct {
	Position
	DaysRemaining int    `json:"daysRemaining"`
	Urgency       string `json:"urgency"`
}
