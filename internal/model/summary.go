package model

import "fmt"

// Granularity selects how byPeriod buckets transaction dates
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// periodLayouts maps each granularity to the time layout used as a period key,
// e.g. a monthly bucket for the 10th of February 2024 is keyed "2024-02"
var periodLayouts = map[Granularity]string{
	GranularityDay:   "2006-01-02",
	GranularityMonth: "2006-01",
	GranularityYear:  "2006",
}

// ParseGranularity accepts day, month or year; empty input defaults to month
func ParseGranularity(s string) (Granularity, error) {
	if s == "" {
		return GranularityMonth, nil
	}
	g := Granularity(s)
	if _, ok := periodLayouts[g]; !ok {
		return "", fmt.Errorf("%w: unknown granularity %q", ErrValidation, s)
	}
	return g, nil
}

// Layout returns the time layout keying periods of this granularity
func (g Granularity) Layout() string {
	return periodLayouts[g]
}

// PeriodTotals is the signed breakdown of a single period bucket
type PeriodTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// Summary is the aggregate view rendered on the dashboard. ByCategory is
// keyed by category id hex and holds unsigned sums; ByPeriod is keyed by the
// granularity's layout string.
type Summary struct {
	TotalIncome  float64                 `json:"totalIncome"`
	TotalExpense float64                 `json:"totalExpense"`
	NetBalance   float64                 `json:"netBalance"`
	ByCategory   map[string]float64      `json:"byCategory"`
	ByPeriod     map[string]PeriodTotals `json:"byPeriod"`
}
