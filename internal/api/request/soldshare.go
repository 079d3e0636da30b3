package request

// CreateSoldShareRequest is the payload for recording a completed trade.
// The profit/loss is computed server-side at creation time and stored.
type CreateSoldShareRequest struct {
	StockID       string  `json:"stockId"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchasePrice"`
	SellPrice     float64 `json:"sellPrice"`
	PurchaseDate  string  `json:"purchaseDate"`
	SellDate      string  `json:"sellDate"`
}
