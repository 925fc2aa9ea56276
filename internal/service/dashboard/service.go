package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ydm-hr/hr-backend-go/internal/domain/attendance"
	"github.com/ydm-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/ydm-hr/hr-backend-go/internal/domain/employee"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/filter"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/validator"
)

type DashboardServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// GetDailyStats implements dashboard.DashboardService. An empty date
// means today.
func (s *DashboardServiceImpl) GetDailyStats(ctx context.Context, date string) (dashboard.StatsResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, valid := validator.IsValidDate(date); !valid {
		return dashboard.StatsResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	var (
		records   []attendance.Attendance
		employees []employee.Employee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, err
	}

	dayRecords := filter.Apply(records, func(a attendance.Attendance) bool {
		return a.Date == date
	})

	stats := Aggregate(dayRecords, len(employees))
	stats.Date = date
	return stats, nil
}
