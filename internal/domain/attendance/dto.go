package attendance

import (
	"strings"

	"github.com/ydm-hr/hr-backend-go/internal/domain/status"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/filter"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/validator"
)

// FilterAll is the sentinel disabling the status filter.
const FilterAll = "all"

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	Overtime   *string `json:"overtime,omitempty"`
	Note       *string `json:"note,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	// The UI always writes canonical statuses; raw sheet variants only
	// appear on read.
	if status.Normalize(r.Status) == status.Unknown {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, leave, pending",
		})
	}

	if r.StartTime != nil && !validator.IsValidTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if r.EndTime != nil && !validator.IsValidTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.Overtime != nil && *r.Overtime != "" && !validator.IsNumeric(strings.TrimSpace(*r.Overtime)) {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime",
			Message: "overtime must be a number of hours",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	Key       Key     `json:"-"`
	Date      *string `json:"date,omitempty"`
	Status    *string `json:"status,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Overtime  *string `json:"overtime,omitempty"`
	Note      *string `json:"note,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateKey(r.Key)...)

	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != nil && status.Normalize(*r.Status) == status.Unknown {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, leave, pending",
		})
	}

	if r.StartTime != nil && !validator.IsValidTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if r.EndTime != nil && !validator.IsValidTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.Overtime != nil && *r.Overtime != "" && !validator.IsNumeric(strings.TrimSpace(*r.Overtime)) {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime",
			Message: "overtime must be a number of hours",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateKey(k Key) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if k.ID == "" {
		if k.EmployeeID == "" || k.Date == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "key",
				Message: "either id or both employee_id and date are required",
			})
		} else if _, valid := validator.IsValidDate(k.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	return errs
}

// AttendanceFilter carries the conjunctive filter predicates for the
// attendance collection. Zero values disable each clause.
type AttendanceFilter struct {
	Search string `json:"search,omitempty"`
	Status string `json:"status,omitempty"` // canonical status or "all"
	Date   string `json:"date,omitempty"`   // YYYY-MM-DD
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && f.Status != FilterAll &&
		f.Status != string(status.Unknown) && status.Normalize(f.Status) == status.Unknown {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: all, present, absent, late, leave, pending, unknown",
		})
	}

	if f.Date != "" {
		if _, valid := validator.IsValidDate(f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Predicates builds the filter clauses, cheapest first. iqamaByEmployee
// lets the free-text search cover the iqama number the dashboard shows
// next to each row; a nil map just disables that part of the match.
func (f *AttendanceFilter) Predicates(iqamaByEmployee map[string]string) []filter.Predicate[Attendance] {
	var preds []filter.Predicate[Attendance]

	if f.Date != "" {
		preds = append(preds, func(a Attendance) bool { return a.Date == f.Date })
	}
	if f.Status != "" && f.Status != FilterAll {
		want := status.Normalize(f.Status)
		preds = append(preds, func(a Attendance) bool { return a.Status == want })
	}
	if f.Search != "" {
		preds = append(preds, func(a Attendance) bool {
			return filter.MatchText(f.Search, a.FullName, a.EmployeeID, iqamaByEmployee[a.EmployeeID])
		})
	}

	return preds
}

type AttendanceResponse struct {
	ID          string            `json:"id"`
	EmployeeID  string            `json:"employee_id"`
	FullName    string            `json:"fullName"`
	IqamaNo     string            `json:"iqamaNo,omitempty"`
	Date        string            `json:"date"`
	Status      string            `json:"status"`
	StatusLabel string            `json:"status_label"`
	StatusColor status.ColorClass `json:"status_color"`
	StartTime   *string           `json:"start_time,omitempty"`
	EndTime     *string           `json:"end_time,omitempty"`
	Overtime    *string           `json:"overtime,omitempty"`
	Note        *string           `json:"note,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

type ListAttendanceResponse struct {
	TotalCount int                  `json:"total_count"`
	Records    []AttendanceResponse `json:"records"`
}
