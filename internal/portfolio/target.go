package portfolio

import (
	"math"
	"sort"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/model"
)

// Urgency levels for a position approaching its target date, most urgent
// first. Overdue targets (negative days remaining) are critical.
const (
	UrgencyCritical = "critical"
	UrgencyUrgent   = "urgent"
	UrgencyWarning  = "warning"
	UrgencyNormal   = "normal"
)

// WithTarget returns a copy of the position with its target fields
// overwritten. The date is stored as given; whether it is in the future is
// for the validation layer to decide.
func WithTarget(pos model.Position, targetPrice float64, targetDate string) model.Position {
	pos.TargetPrice = targetPrice
	pos.TargetDate = targetDate
	return pos
}

// DaysRemaining returns the number of days until the target date, rounded
// up, relative to asOf. Negative values mean the target date has passed.
// ok is false when the date is empty or does not parse; such positions are
// treated as having no target.
func DaysRemaining(targetDate string, asOf time.Time) (int, bool) {
	target, ok := parseTargetDate(targetDate)
	if !ok {
		return 0, false
	}
	days := int(math.Ceil(target.Sub(asOf).Hours() / 24))
	return days, true
}

// UrgencyFor classifies how pressing a target date is from the days left.
func UrgencyFor(daysRemaining int) string {
	switch {
	case daysRemaining <= 3:
		return UrgencyCritical
	case daysRemaining <= 7:
		return UrgencyUrgent
	case daysRemaining <= 15:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

// FilterNearTarget selects positions whose target date falls within
// horizonDays of asOf and annotates them with days remaining and urgency.
// Positions with a missing or unparseable target date are skipped, never an
// error. The result is sorted most urgent first; positions with equal days
// remaining keep their input order.
func FilterNearTarget(positions []model.Position, horizonDays int, asOf time.Time) []model.NearTargetPosition {
	near := []model.NearTargetPosition{}

	for _, pos := range positions {
		days, ok := DaysRemaining(pos.TargetDate, asOf)
		if !ok || days > horizonDays {
			continue
		}
		near = append(near, model.NearTargetPosition{
			Position:      pos,
			DaysRemaining: days,
			Urgency:       UrgencyFor(days),
		})
	}

	sort.SliceStable(near, func(i, j int) bool {
		return near[i].DaysRemaining < near[j].DaysRemaining
	})

	return near
}

// parseTargetDate accepts the stored "2006-01-02" form and falls back to
// RFC3339 for rows imported with a full timestamp.
func parseTargetDate(str string) (time.Time, bool) {
	if str == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		t, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t.UTC(), true
}
