package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/ydm-hr/hr-backend-go/internal/domain/attendance"
	"github.com/ydm-hr/hr-backend-go/internal/service/export"
)

type fakeAttendanceService struct {
	records map[string]attendance.AttendanceResponse
}

func (f *fakeAttendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return attendance.ListAttendanceResponse{}, nil
}

func (f *fakeAttendanceService) GetAttendance(ctx context.Context, key attendance.Key) (attendance.AttendanceResponse, error) {
	if rec, ok := f.records[key.ID]; ok {
		return rec, nil
	}
	return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceService) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) DeleteAttendance(ctx context.Context, key attendance.Key) error {
	return nil
}

func newAttendanceRouter(svc attendance.AttendanceService) *chi.Mux {
	h := NewAttendanceHandler(svc, export.NewExportService())
	r := chi.NewRouter()
	r.Get("/attendance/{id}", h.Get)
	return r
}

func TestGetAttendanceByID(t *testing.T) {
	r := newAttendanceRouter(&fakeAttendanceService{records: map[string]attendance.AttendanceResponse{
		"a1": {ID: "a1", EmployeeID: "e1", FullName: "Ali Khan", Date: "2024-05-01", Status: "present"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/attendance/a1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ali Khan")
}

func TestGetAttendanceByIDNotFound(t *testing.T) {
	r := newAttendanceRouter(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
