package dashboard

import "context"

// DashboardService defines the statistics operations behind the
// dashboard cards.
type DashboardService interface {
	// GetDailyStats aggregates attendance for one day (default today)
	// against the current employee headcount
	GetDailyStats(ctx context.Context, date string) (StatsResponse, error)
}
