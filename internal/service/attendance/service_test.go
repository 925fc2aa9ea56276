package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ydm-hr/hr-backend-go/internal/domain/attendance"
	"github.com/ydm-hr/hr-backend-go/internal/domain/employee"
	"github.com/ydm-hr/hr-backend-go/internal/domain/status"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/validator"
)

type fakeAttendanceRepo struct {
	records   []attendance.Attendance
	listErr   error
	deletedID string
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.Attendance, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	rec.ID = "generated-id"
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	for i := range f.records {
		if f.records[i].ID == rec.ID {
			f.records[i] = rec
		}
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return nil
}

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (f *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *stubEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func seedRecords() []attendance.Attendance {
	return []attendance.Attendance{
		{ID: "a1", EmployeeID: "e1", FullName: "Ali Khan", Date: "2024-05-01", Status: status.Present, RawStatus: "حاضر"},
		{ID: "a2", EmployeeID: "e2", FullName: "Sara Ahmed", Date: "2024-05-01", Status: status.Absent, RawStatus: "absent"},
		{ID: "a3", EmployeeID: "e1", FullName: "Ali Khan", Date: "2024-05-02", Status: status.Late, RawStatus: "late"},
		{ID: "a4", EmployeeID: "e3", FullName: "Khalid Ali", Date: "2024-05-02", Status: status.Unknown, RawStatus: "vacation"},
	}
}

func seedRoster() []employee.Employee {
	return []employee.Employee{
		{ID: "e1", FullName: "Ali Khan", IqamaNo: "1234567890"},
		{ID: "e2", FullName: "Sara Ahmed", IqamaNo: "2345678901"},
		{ID: "e3", FullName: "Khalid Ali", IqamaNo: "3456789012"},
	}
}

func newService(records []attendance.Attendance) (attendance.AttendanceService, *fakeAttendanceRepo) {
	repo := &fakeAttendanceRepo{records: records}
	return NewAttendanceService(repo, &stubEmployeeRepo{employees: seedRoster()}), repo
}

func TestListAttendanceNoFilter(t *testing.T) {
	svc, _ := newService(seedRecords())

	resp, err := svc.ListAttendance(context.Background(), attendance.AttendanceFilter{})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalCount)
	assert.Equal(t, "1234567890", resp.Records[0].IqamaNo)
	assert.Equal(t, "Present", resp.Records[0].StatusLabel)
	assert.Equal(t, "Vacation", resp.Records[3].StatusLabel)
	assert.Equal(t, status.Colors(status.Unknown), resp.Records[3].StatusColor)
}

func TestListAttendanceFilters(t *testing.T) {
	svc, _ := newService(seedRecords())

	tests := []struct {
		name    string
		filter  attendance.AttendanceFilter
		wantIDs []string
	}{
		{
			name:    "by date",
			filter:  attendance.AttendanceFilter{Date: "2024-05-01"},
			wantIDs: []string{"a1", "a2"},
		},
		{
			name:    "by canonical status",
			filter:  attendance.AttendanceFilter{Status: "late"},
			wantIDs: []string{"a3"},
		},
		{
			name:    "bilingual status value selects the same bucket",
			filter:  attendance.AttendanceFilter{Status: "غائب"},
			wantIDs: []string{"a2"},
		},
		{
			name:    "unknown bucket is addressable",
			filter:  attendance.AttendanceFilter{Status: "unknown"},
			wantIDs: []string{"a4"},
		},
		{
			name:    "search by name fragment",
			filter:  attendance.AttendanceFilter{Search: "ali"},
			wantIDs: []string{"a1", "a3", "a4"},
		},
		{
			name:    "search by iqama via roster lookup",
			filter:  attendance.AttendanceFilter{Search: "2345678901"},
			wantIDs: []string{"a2"},
		},
		{
			name:    "date and status conjunction",
			filter:  attendance.AttendanceFilter{Date: "2024-05-02", Status: "late"},
			wantIDs: []string{"a3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListAttendance(context.Background(), tt.filter)

			require.NoError(t, err)
			gotIDs := make([]string, 0, len(resp.Records))
			for _, r := range resp.Records {
				gotIDs = append(gotIDs, r.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestListAttendanceRejectsBadFilter(t *testing.T) {
	svc, _ := newService(seedRecords())

	_, err := svc.ListAttendance(context.Background(), attendance.AttendanceFilter{Date: "01/05/2024"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestCreateAttendanceSnapshotsEmployeeName(t *testing.T) {
	svc, repo := newService(nil)

	resp, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "e1",
		Date:       "2024-05-03",
		Status:     "present",
	})

	require.NoError(t, err)
	assert.Equal(t, "generated-id", resp.ID)
	assert.Equal(t, "Ali Khan", resp.FullName)
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "Present", resp.StatusLabel)
	require.Len(t, repo.records, 1)
	assert.Equal(t, "present", repo.records[0].RawStatus)
}

func TestCreateAttendanceUnknownEmployee(t *testing.T) {
	svc, _ := newService(nil)

	_, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "ghost",
		Date:       "2024-05-03",
		Status:     "present",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateAttendanceDuplicateDay(t *testing.T) {
	svc, _ := newService(seedRecords())

	_, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "e1",
		Date:       "2024-05-01",
		Status:     "absent",
	})

	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)
}

func TestCreateAttendanceRejectsUnrecognizedStatus(t *testing.T) {
	svc, _ := newService(nil)

	_, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "e1",
		Date:       "2024-05-03",
		Status:     "vacation",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestUpdateAttendanceStatusEditRewritesRawValue(t *testing.T) {
	svc, repo := newService(seedRecords())

	newStatus := "absent"
	resp, err := svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{
		Key:    attendance.Key{ID: "a1"},
		Status: &newStatus,
	})

	require.NoError(t, err)
	assert.Equal(t, "absent", resp.Status)
	assert.Equal(t, "Absent", resp.StatusLabel)
	assert.Equal(t, "absent", repo.records[0].RawStatus)
}

func TestUpdateAttendanceNonStatusEditKeepsRawValue(t *testing.T) {
	svc, repo := newService(seedRecords())

	note := "left early"
	resp, err := svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{
		Key:  attendance.Key{ID: "a1"},
		Note: &note,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Note)
	assert.Equal(t, "left early", *resp.Note)
	assert.Equal(t, "حاضر", repo.records[0].RawStatus)
	assert.Equal(t, "Present", resp.StatusLabel)
}

func TestUpdateAttendanceByLegacyPair(t *testing.T) {
	svc, _ := newService(seedRecords())

	newStatus := "leave"
	resp, err := svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{
		Key:    attendance.Key{EmployeeID: "e2", Date: "2024-05-01"},
		Status: &newStatus,
	})

	require.NoError(t, err)
	assert.Equal(t, "a2", resp.ID)
	assert.Equal(t, "leave", resp.Status)
}

func TestUpdateAttendanceAmbiguousPair(t *testing.T) {
	records := seedRecords()
	records = append(records, attendance.Attendance{
		ID: "a5", EmployeeID: "e1", Date: "2024-05-01", Status: status.Late, RawStatus: "late",
	})
	svc, _ := newService(records)

	newStatus := "present"
	_, err := svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{
		Key:    attendance.Key{EmployeeID: "e1", Date: "2024-05-01"},
		Status: &newStatus,
	})

	assert.ErrorIs(t, err, attendance.ErrAmbiguousKey)
}

func TestUpdateAttendanceNotFound(t *testing.T) {
	svc, _ := newService(seedRecords())

	newStatus := "present"
	_, err := svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{
		Key:    attendance.Key{ID: "missing"},
		Status: &newStatus,
	})

	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestUpdateAttendanceRequiresKey(t *testing.T) {
	svc, _ := newService(seedRecords())

	newStatus := "present"
	_, err := svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{
		Status: &newStatus,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestDeleteAttendanceByID(t *testing.T) {
	svc, repo := newService(seedRecords())

	err := svc.DeleteAttendance(context.Background(), attendance.Key{ID: "a2"})

	require.NoError(t, err)
	assert.Equal(t, "a2", repo.deletedID)
}

func TestDeleteAttendanceByLegacyPairResolvesID(t *testing.T) {
	svc, repo := newService(seedRecords())

	err := svc.DeleteAttendance(context.Background(), attendance.Key{EmployeeID: "e3", Date: "2024-05-02"})

	require.NoError(t, err)
	assert.Equal(t, "a4", repo.deletedID)
}

func TestGetAttendance(t *testing.T) {
	svc, _ := newService(seedRecords())

	resp, err := svc.GetAttendance(context.Background(), attendance.Key{ID: "a3"})

	require.NoError(t, err)
	assert.Equal(t, "Ali Khan", resp.FullName)
	assert.Equal(t, "late", resp.Status)
}
