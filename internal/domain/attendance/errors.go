package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance already recorded for this employee and date")
	ErrAmbiguousKey        = errors.New("multiple attendance records match this employee and date")
)
