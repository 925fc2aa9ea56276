package attendance

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ydm-hr/hr-backend-go/internal/domain/attendance"
	"github.com/ydm-hr/hr-backend-go/internal/domain/employee"
	"github.com/ydm-hr/hr-backend-go/internal/domain/status"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/filter"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ListAttendance implements attendance.AttendanceService. Attendance
// rows and the employee roster are fetched concurrently; the roster
// feeds the iqama column and the free-text search.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, f attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := f.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, employees, err := s.fetchBoth(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	iqamaByEmployee := make(map[string]string, len(employees))
	for _, emp := range employees {
		iqamaByEmployee[emp.ID] = emp.IqamaNo
	}

	filtered := filter.Apply(records, f.Predicates(iqamaByEmployee)...)

	responses := make([]attendance.AttendanceResponse, 0, len(filtered))
	for _, rec := range filtered {
		resp := mapAttendanceToResponse(rec)
		resp.IqamaNo = iqamaByEmployee[rec.EmployeeID]
		responses = append(responses, resp)
	}

	return attendance.ListAttendanceResponse{
		TotalCount: len(responses),
		Records:    responses,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, key attendance.Key) (attendance.AttendanceResponse, error) {
	rec, err := s.resolveKey(ctx, key)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapAttendanceToResponse(rec), nil
}

// CreateAttendance implements attendance.AttendanceService. The
// employee's name is snapshotted onto the record so rows stay readable
// after the employee changes or disappears.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	records, employees, err := s.fetchBoth(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var emp *employee.Employee
	for i := range employees {
		if employees[i].ID == req.EmployeeID {
			emp = &employees[i]
			break
		}
	}
	if emp == nil {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	for _, existing := range records {
		if existing.EmployeeID == req.EmployeeID && existing.Date == req.Date {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateAttendance
		}
	}

	canonical := status.Normalize(req.Status)
	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		FullName:   emp.FullName,
		Date:       req.Date,
		Status:     canonical,
		RawStatus:  string(canonical),
		StartTime:  normalizeOpt(req.StartTime),
		EndTime:    normalizeOpt(req.EndTime),
		Overtime:   normalizeOpt(req.Overtime),
		Note:       normalizeOpt(req.Note),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := mapAttendanceToResponse(created)
	resp.IqamaNo = emp.IqamaNo
	return resp, nil
}

// UpdateAttendance implements attendance.AttendanceService. Only an
// explicit status edit replaces the stored raw value; other patches
// leave whatever spelling the sheet already holds untouched.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	current, err := s.resolveKey(ctx, req.Key)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Date != nil {
		current.Date = *req.Date
	}
	if req.Status != nil {
		canonical := status.Normalize(*req.Status)
		current.Status = canonical
		current.RawStatus = string(canonical)
	}
	if req.StartTime != nil {
		current.StartTime = normalizeOpt(req.StartTime)
	}
	if req.EndTime != nil {
		current.EndTime = normalizeOpt(req.EndTime)
	}
	if req.Overtime != nil {
		current.Overtime = normalizeOpt(req.Overtime)
	}
	if req.Note != nil {
		current.Note = normalizeOpt(req.Note)
	}

	updated, err := s.attendanceRepo.Update(ctx, current)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, key attendance.Key) error {
	rec, err := s.resolveKey(ctx, key)
	if err != nil {
		return err
	}
	return s.attendanceRepo.Delete(ctx, rec.ID)
}

// resolveKey finds the addressed record. The surrogate id wins; the
// legacy (employee_id, date) pair is scanned against the snapshot and
// refused when it matches more than one row.
func (s *AttendanceServiceImpl) resolveKey(ctx context.Context, key attendance.Key) (attendance.Attendance, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if key.ByID() {
		for _, rec := range records {
			if rec.ID == key.ID {
				return rec, nil
			}
		}
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	var found *attendance.Attendance
	for i := range records {
		if records[i].EmployeeID == key.EmployeeID && records[i].Date == key.Date {
			if found != nil {
				return attendance.Attendance{}, attendance.ErrAmbiguousKey
			}
			found = &records[i]
		}
	}
	if found == nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *found, nil
}

func (s *AttendanceServiceImpl) fetchBoth(ctx context.Context) ([]attendance.Attendance, []employee.Employee, error) {
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
		return nil, nil, err
	}

	return records, employees, nil
}

func normalizeOpt(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func mapAttendanceToResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		FullName:    rec.FullName,
		Date:        rec.Date,
		Status:      string(rec.Status),
		StatusLabel: status.DisplayLabel(rec.RawStatus),
		StatusColor: status.Colors(rec.Status),
		StartTime:   rec.StartTime,
		EndTime:     rec.EndTime,
		Overtime:    rec.Overtime,
		Note:        rec.Note,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
