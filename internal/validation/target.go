package validation

import (
	"strings"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/api/request"
)

// ValidateUpdateTarget validates a target update request.
//
// Required fields:
//   - targetPrice: Must be positive
//   - targetDate: Must be in YYYY-MM-DD format and not in the past
//
// The past-date check lives here deliberately: the underlying target
// calculations accept any date, so this is the only gate.
func ValidateUpdateTarget(req request.UpdateTargetRequest, now time.Time) error {
	errors := make(map[string]string)

	if req.TargetPrice <= 0.0 {
		errors["targetPrice"] = "targetPrice must be positive"
	}

	if strings.TrimSpace(req.TargetDate) == "" {
		errors["targetDate"] = "targetDate is required"
	} else if parsed, err := time.Parse("2006-01-02", req.TargetDate); err != nil {
		errors["targetDate"] = err.Error()
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if parsed.Before(today) {
			errors["targetDate"] = "targetDate cannot be in the past"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
