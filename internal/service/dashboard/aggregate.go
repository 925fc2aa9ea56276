package dashboard

import (
	"log/slog"
	"math"

	"github.com/ydm-hr/hr-backend-go/internal/domain/attendance"
	"github.com/ydm-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/ydm-hr/hr-backend-go/internal/domain/status"
)

// Aggregate counts one day's records into the canonical status buckets
// and derives percentages against total, the employee headcount.
// Records outside the five buckets land in Unaccounted, so the bucket
// counts always sum to len(records). A headcount below the record count
// is tolerated; the percentages just become best effort.
func Aggregate(records []attendance.Attendance, total int) dashboard.StatsResponse {
	stats := dashboard.StatsResponse{
		Recorded: len(records),
		Total:    total,
	}

	if total < len(records) {
		slog.Warn("attendance records exceed employee headcount",
			slog.Int("records", len(records)),
			slog.Int("headcount", total))
	}

	for _, rec := range records {
		switch rec.Status {
		case status.Present:
			stats.Present++
		case status.Absent:
			stats.Absent++
		case status.Late:
			stats.Late++
		case status.Leave:
			stats.Leave++
		case status.Pending:
			stats.Pending++
		default:
			stats.Unaccounted++
		}
	}

	stats.PresentPercent = percent(stats.Present, total)
	stats.AbsentPercent = percent(stats.Absent, total)
	stats.LatePercent = percent(stats.Late, total)
	stats.LeavePercent = percent(stats.Leave, total)
	stats.PendingPercent = percent(stats.Pending, total)

	return stats
}

// percent rounds half away from zero and clamps to [0, 100]. A zero or
// negative denominator yields 0 rather than a division error.
func percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(count) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
