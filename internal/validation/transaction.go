package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/api/request"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[string]bool{
	"buy": true, "sell": true,
}

// ValidateCreateTransaction validates a transaction creation request.
// The business rules here are the whole oversell/garbage defense for the
// position calculations: the aggregation itself accepts anything.
//
// Required fields:
//   - stockId: Must be a valid UUID
//   - date: Must be in YYYY-MM-DD format
//   - type: Must be one of: buy, sell
//   - quantity: Must be positive
//   - price: Must be positive
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.StockID); err != nil {
		return err
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["transactionType"] = "type is required"
	} else if !ValidTransactionType[req.Type] {
		errors["transactionType"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.Price <= 0.0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
