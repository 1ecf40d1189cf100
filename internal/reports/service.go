// Package reports is the read-only aggregation engine: paginated listings,
// per-category rollups and the NGO/donor/platform dashboards. Nothing in
// this package mutates the store.
package reports

import (
	"math"

	"github.com/rs/zerolog"

	"donatehub/internal/infra"
)

// Service runs the aggregation queries.
type Service struct {
	sql    infra.SQLExecutor
	logger zerolog.Logger
}

// NewService creates an aggregation service.
func NewService(sql infra.SQLExecutor, logger zerolog.Logger) *Service {
	return &Service{sql: sql, logger: logger}
}

// MonthlyPoint is one bucket of a trailing 12-month donation time series.
type MonthlyPoint struct {
	Year           int   `json:"year"`
	Month          int   `json:"month"`
	TotalAmount    int64 `json:"totalAmount"`
	TotalDonations int64 `json:"totalDonations"`
}

// CategoryStat is a per-category campaign rollup.
type CategoryStat struct {
	Name        string `json:"name"`
	Count       int64  `json:"count"`
	TotalRaised int64  `json:"totalRaised"`
	TotalGoal   int64  `json:"totalGoal"`
}

// progressPercent rounds raised/goal to a whole percentage, 0 for a zero
// goal.
func progressPercent(raised, goal int64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(float64(raised) / float64(goal) * 100))
}

// likePattern wraps a substring search term for ILIKE matching; empty input
// stays empty so the SQL filter short-circuits.
func likePattern(search string) string {
	if search == "" {
		return ""
	}
	return "%" + search + "%"
}
