package sheetdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ydm-hr/hr-backend-go/internal/domain/attendance"
	"github.com/ydm-hr/hr-backend-go/internal/domain/status"
)

type AttendanceRepository struct {
	client *Client
}

func NewAttendanceRepository(client *Client) attendance.AttendanceRepository {
	return &AttendanceRepository{client: client}
}

// List implements attendance.AttendanceRepository.
func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	raw, err := r.client.call(ctx, opReadAttendance, nil)
	if err != nil {
		return nil, err
	}

	rows := decodeRows(raw)
	records := make([]attendance.Attendance, 0, len(rows))
	for _, row := range rows {
		records = append(records, attendanceFromRow(row))
	}
	return records, nil
}

// Create implements attendance.AttendanceRepository.
func (r *AttendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	now := time.Now().Format(time.RFC3339)
	att.ID = uuid.NewString()
	att.CreatedAt = now
	att.UpdatedAt = now

	raw, err := r.client.call(ctx, opAddAttendance, attendanceToRow(att))
	if err != nil {
		return attendance.Attendance{}, err
	}

	if row, ok := decodeRow(raw); ok {
		return attendanceFromRow(row), nil
	}
	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *AttendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.UpdatedAt = time.Now().Format(time.RFC3339)

	raw, err := r.client.call(ctx, opUpdateAttendance, attendanceToRow(att))
	if err != nil {
		return attendance.Attendance{}, err
	}

	if row, ok := decodeRow(raw); ok {
		return attendanceFromRow(row), nil
	}
	return att, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.call(ctx, opDeleteAttendance, map[string]string{"id": id})
	return err
}

func attendanceFromRow(row map[string]any) attendance.Attendance {
	rawStatus := row["status"]

	return attendance.Attendance{
		ID:         rowString(row, "id"),
		EmployeeID: rowString(row, "employee_id", "employeeId"),
		FullName:   rowString(row, "fullName", "full_name", "name"),
		Date:       rowString(row, "date"),
		Status:     status.Normalize(rawStatus),
		RawStatus:  rawStatus,
		StartTime:  rowOptString(row, "start_time", "startTime", "checkIn"),
		EndTime:    rowOptString(row, "end_time", "endTime", "checkOut"),
		Overtime:   rowOptString(row, "overtime"),
		Note:       rowOptString(row, "note"),
		CreatedAt:  rowString(row, "created_at", "createdAt"),
		UpdatedAt:  rowString(row, "updated_at", "updatedAt"),
	}
}

// attendanceToRow builds the wire row. The status column keeps whatever
// raw form the record carries; it only becomes canonical when the user
// edited it, in which case the service set RawStatus to the canonical
// string before calling us.
func attendanceToRow(att attendance.Attendance) map[string]any {
	rawStatus := att.RawStatus
	if rawStatus == nil {
		rawStatus = string(att.Status)
	}

	row := map[string]any{
		"id":          att.ID,
		"employee_id": att.EmployeeID,
		"fullName":    att.FullName,
		"date":        att.Date,
		"status":      rawStatus,
		"created_at":  att.CreatedAt,
		"updated_at":  att.UpdatedAt,
	}
	if att.StartTime != nil {
		row["start_time"] = *att.StartTime
	}
	if att.EndTime != nil {
		row["end_time"] = *att.EndTime
	}
	if att.Overtime != nil {
		row["overtime"] = *att.Overtime
	}
	if att.Note != nil {
		row["note"] = *att.Note
	}
	return row
}
