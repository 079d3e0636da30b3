package request

// CreateStockRequest is the payload for registering a new stock.
type CreateStockRequest struct {
	Name            string  `json:"name"`
	SectorName      string  `json:"sectorName,omitempty"`
	CurrentPrice    float64 `json:"currentPrice"`
	CurrentRatio    float64 `json:"currentRatio"`
	DebtEquityRatio float64 `json:"debtEquityRatio"`
	PriceBookRatio  float64 `json:"priceBookRatio"`
	TargetPrice     float64 `json:"targetPrice"`
	TargetDate      string  `json:"targetDate"`
}

// UpdateStockRequest is the payload for updating a stock; all fields optional.
type UpdateStockRequest struct {
	Name            *string  `json:"name,omitempty"`
	SectorName      *string  `json:"sectorName,omitempty"`
	CurrentPrice    *float64 `json:"currentPrice,omitempty"`
	CurrentRatio    *float64 `json:"currentRatio,omitempty"`
	DebtEquityRatio *float64 `json:"debtEquityRatio,omitempty"`
	PriceBookRatio  *float64 `json:"priceBookRatio,omitempty"`
	TargetPrice     *float64 `json:"targetPrice,omitempty"`
	TargetDate      *string  `json:"targetDate,omitempty"`
}
