package attendance

import (
	"github.com/ydm-hr/hr-backend-go/internal/domain/status"
)

type Attendance struct {
	ID         string
	EmployeeID string
	FullName   string // employee name snapshot taken at record creation
	Date       string // yyyy-MM-dd
	Status     status.Status
	RawStatus  any // value as stored in the sheet; drives the display label
	StartTime  *string
	EndTime    *string
	Overtime   *string
	Note       *string
	CreatedAt  string
	UpdatedAt  string
}

// Key identifies an attendance record for update/delete. ID is the
// authoritative surrogate key; the (EmployeeID, Date) pair is a legacy
// secondary lookup resolved against the in-memory snapshot.
type Key struct {
	ID         string
	EmployeeID string
	Date       string
}

// ByID reports whether the key addresses a record by surrogate id.
func (k Key) ByID() bool {
	return k.ID != ""
}
