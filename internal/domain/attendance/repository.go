package attendance

import "context"

// AttendanceRepository defines data access for attendance records against
// the entity store webhook.
type AttendanceRepository interface {
	// List retrieves the full attendance collection
	List(ctx context.Context) ([]Attendance, error)

	// Create appends a new attendance row and returns the stored record
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// Update rewrites an existing attendance row identified by att.ID
	Update(ctx context.Context, att Attendance) (Attendance, error)

	// Delete removes the attendance row with the given id
	Delete(ctx context.Context, id string) error
}
