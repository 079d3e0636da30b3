package validation

import (
	"strings"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/api/request"
)

// ValidateCreateStock validates a stock creation request. Only the name is
// mandatory; the analysis ratios default to zero for stocks that have not
// been analysed yet. A target date, if given, must be well-formed.
func ValidateCreateStock(req request.CreateStockRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.CurrentPrice < 0 {
		errors["currentPrice"] = "currentPrice cannot be negative"
	}
	if req.TargetPrice < 0 {
		errors["targetPrice"] = "targetPrice cannot be negative"
	}

	if strings.TrimSpace(req.TargetDate) != "" {
		if _, err := time.Parse("2006-01-02", req.TargetDate); err != nil {
			errors["targetDate"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateStock validates a stock update request. All fields are
// optional, but provided fields must meet the same constraints as create.
func ValidateUpdateStock(req request.UpdateStockRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if req.CurrentPrice != nil && *req.CurrentPrice < 0 {
		errors["currentPrice"] = "currentPrice cannot be negative"
	}
	if req.TargetPrice != nil && *req.TargetPrice < 0 {
		errors["targetPrice"] = "targetPrice cannot be negative"
	}
	if req.TargetDate != nil && strings.TrimSpace(*req.TargetDate) != "" {
		if _, err := time.Parse("2006-01-02", *req.TargetDate); err != nil {
			errors["targetDate"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
