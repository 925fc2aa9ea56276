package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ydm-hr/hr-backend-go/internal/domain/attendance"
	"github.com/ydm-hr/hr-backend-go/internal/handler/http/response"
	"github.com/ydm-hr/hr-backend-go/internal/service/export"
)

type AttendanceHandler struct {
	attendanceService attendance.AttendanceService
	exportService     *export.ExportService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, exportService *export.ExportService) AttendanceHandler {
	return AttendanceHandler{
		attendanceService: attendanceService,
		exportService:     exportService,
	}
}

func attendanceFilterFromQuery(r *http.Request) attendance.AttendanceFilter {
	q := r.URL.Query()
	return attendance.AttendanceFilter{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Date:   q.Get("date"),
	}
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.ListAttendance(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *AttendanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := attendance.Key{ID: chi.URLParam(r, "id")}
	resp, err := h.attendanceService.GetAttendance(r.Context(), key)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.attendanceService.CreateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Attendance recorded", resp)
}

func (h *AttendanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Key = attendance.Key{ID: chi.URLParam(r, "id")}

	resp, err := h.attendanceService.UpdateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance updated", resp)
}

func (h *AttendanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := attendance.Key{ID: chi.URLParam(r, "id")}
	if err := h.attendanceService.DeleteAttendance(r.Context(), key); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance deleted", nil)
}

// UpdateByDay addresses a record by the legacy (employee, date) pair for
// rows written before surrogate ids existed.
func (h *AttendanceHandler) UpdateByDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Key = attendance.Key{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Date:       chi.URLParam(r, "date"),
	}

	resp, err := h.attendanceService.UpdateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance updated", resp)
}

func (h *AttendanceHandler) DeleteByDay(w http.ResponseWriter, r *http.Request) {
	key := attendance.Key{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Date:       chi.URLParam(r, "date"),
	}
	if err := h.attendanceService.DeleteAttendance(r.Context(), key); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance deleted", nil)
}

// Export streams the filtered attendance listing as a downloadable file.
func (h *AttendanceHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.attendanceService.ListAttendance(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.WriteAttendance(&buf, format, resp.Records); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", format.FileName("attendance", time.Now())))
	_, _ = buf.WriteTo(w)
}
