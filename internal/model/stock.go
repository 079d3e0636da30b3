package model

import "time"

// Stock represents a tracked stock with its analysis metadata.
// Target price and target date form the per-stock goal; targetDate is kept
// as a raw string because historic rows may carry values that do not parse.
type Stock struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	SectorName      string    `json:"sectorName,omitempty"`
	CurrentPrice    float64   `json:"currentPrice"`
	CurrentRatio    float64   `json:"currentRatio"`
	DebtEquityRatio float64   `json:"debtEquityRatio"`
	PriceBookRatio  float64   `json:"priceBookRatio"`
	TargetPrice     float64   `json:"targetPrice"`
	TargetDate      string    `json:"targetDate"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}
