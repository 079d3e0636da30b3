package request

// UpdateTargetRequest is the payload for setting a stock's target price and date.
type UpdateTargetRequest struct {
	TargetPrice float64 `json:"targetPrice"`
	TargetDate  string  `json:"targetDate"`
}
