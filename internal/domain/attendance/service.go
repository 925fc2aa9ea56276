package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ListAttendance retrieves attendance records matching the filter,
	// preserving the store's row order
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single record by key (id or legacy
	// employee/date pair)
	GetAttendance(ctx context.Context, key Key) (AttendanceResponse, error)

	// CreateAttendance validates and stores a new record, snapshotting the
	// employee name and rejecting a second record for the same
	// (employee_id, date) pair
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// UpdateAttendance applies a partial update to an existing record
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes a record
	DeleteAttendance(ctx context.Context, key Key) error
}
