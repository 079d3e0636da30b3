package validation

import (
	"strings"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/api/request"
)

// ValidateCreateSoldShare validates a sold share creation request.
//
// Required fields:
//   - stockId: Must be a valid UUID
//   - quantity: Must be positive
//   - purchasePrice, sellPrice: Must be positive
//   - purchaseDate, sellDate: Must be in YYYY-MM-DD format, with the sale
//     not preceding the purchase
func ValidateCreateSoldShare(req request.CreateSoldShareRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.StockID); err != nil {
		return err
	}

	if req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}
	if req.PurchasePrice <= 0.0 {
		errors["purchasePrice"] = "purchasePrice must be positive"
	}
	if req.SellPrice <= 0.0 {
		errors["sellPrice"] = "sellPrice must be positive"
	}

	purchaseDate, purchaseErr := parseRequiredDate(req.PurchaseDate, "purchaseDate", errors)
	sellDate, sellErr := parseRequiredDate(req.SellDate, "sellDate", errors)
	if purchaseErr == nil && sellErr == nil && sellDate.Before(purchaseDate) {
		errors["sellDate"] = "sellDate cannot precede purchaseDate"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func parseRequiredDate(value, field string, errors map[string]string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		errors[field] = field + " is required"
		return time.Time{}, &Error{Fields: errors}
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		errors[field] = err.Error()
		return time.Time{}, err
	}
	return parsed, nil
}
