package finding

import (
	"fmt"
	"strings"
	"time"
)

// SLADateLayout is the month/day/year layout written to the SLA Date column
const SLADateLayout = "01/02/2006"

// parsing accepts unpadded month and day too
const slaParseLayout = "1/2/2006"

// RiskRating is the overall rating derived from impact, likelihood and exposure
type RiskRating string

const (
	RatingLow      RiskRating = "Low"
	RatingMedium   RiskRating = "Medium"
	RatingHigh     RiskRating = "High"
	RatingCritical RiskRating = "Critical"
)

// Ratings lists ratings from the most to the least severe
func Ratings() []RiskRating {
	return []RiskRating{RatingCritical, RatingHigh, RatingMedium, RatingLow}
}

// RiskScore is the mean of the impact, likelihood and exposure ordinals (1-4)
func (r Record) RiskScore() (float64, error) {
	impact, err := Score(ColumnImpact, r.Impact)
	if err != nil {
		return 0, err
	}
	likelihood, err := Score(ColumnLikelihood, r.Likelihood)
	if err != nil {
		return 0, err
	}
	exposure, err := Score(ColumnExposure, r.Exposure)
	if err != nil {
		return 0, err
	}
	return float64(impact+likelihood+exposure) / 3.0, nil
}

// RatingForScore maps an average score onto a rating band
func RatingForScore(score float64) RiskRating {
	switch {
	case score >= 4.0:
		return RatingCritical
	case score >= 3.0:
		return RatingHigh
	case score >= 2.0:
		return RatingMedium
	default:
		return RatingLow
	}
}

// RiskRating computes the record's overall rating
func (r Record) RiskRating() (RiskRating, error) {
	score, err := r.RiskScore()
	if err != nil {
		return "", err
	}
	return RatingForScore(score), nil
}

// ParseSLADate parses a month/day/year date such as 12/31/2024
func ParseSLADate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("SLA date is empty")
	}
	t, err := time.ParseInLocation(slaParseLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("SLA date %q is not month/day/year: %w", s, err)
	}
	return t, nil
}

// IsOverdue reports whether the SLA date falls before now's calendar day.
// Records without a parseable SLA date are never overdue.
func (r Record) IsOverdue(now time.Time) bool {
	due, err := ParseSLADate(r.SLADate)
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}
