package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ydm-hr/hr-backend-go/internal/domain/employee"
	"github.com/ydm-hr/hr-backend-go/internal/handler/http/response"
	"github.com/ydm-hr/hr-backend-go/internal/service/export"
)

type EmployeeHandler struct {
	employeeService employee.EmployeeService
	exportService   *export.ExportService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, exportService *export.ExportService) EmployeeHandler {
	return EmployeeHandler{
		employeeService: employeeService,
		exportService:   exportService,
	}
}

func employeeFilterFromQuery(r *http.Request) employee.EmployeeFilter {
	q := r.URL.Query()
	return employee.EmployeeFilter{
		Search:      q.Get("search"),
		Status:      q.Get("status"),
		Project:     q.Get("project"),
		JobTitle:    q.Get("jobTitle"),
		PaymentType: q.Get("paymentType"),
		Sponsorship: q.Get("sponsorship"),
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.ListEmployees(r.Context(), employeeFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", resp)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated", resp)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// Export streams the filtered employee listing as a downloadable file.
// The document is rendered into memory first so errors can still produce
// a JSON response.
func (h *EmployeeHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.employeeService.ListEmployees(r.Context(), employeeFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.WriteEmployees(&buf, format, resp.Employees); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", format.FileName("employees", time.Now())))
	_, _ = buf.WriteTo(w)
}
