package request

// CreateTransactionRequest is the payload for recording a buy or sell.
// There is no update request: a transaction correction is a delete
// followed by a recreate.
type CreateTransactionRequest struct {
	StockID  string  `json:"stockId"`
	Date     string  `json:"date"`
	Type     string  `json:"type"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}
