package employee

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ydm-hr/hr-backend-go/internal/domain/employee"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/filter"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService. The store always
// returns the full collection; filtering happens here, in memory, with
// the store's row order preserved.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, f employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := f.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	records, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	filtered := filter.Apply(records, f.Predicates()...)

	responses := make([]employee.EmployeeResponse, 0, len(filtered))
	for _, emp := range filtered {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: len(responses),
		Employees:  responses,
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.findByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	records, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	iqamaNo := strings.TrimSpace(req.IqamaNo)
	for _, existing := range records {
		if existing.IqamaNo == iqamaNo {
			return employee.EmployeeResponse{}, employee.ErrIqamaNoExists
		}
	}

	// Validated above, cannot fail here.
	rate, _ := decimal.NewFromString(strings.TrimSpace(req.RateOfPayment))

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FullName:      strings.TrimSpace(req.FullName),
		IqamaNo:       iqamaNo,
		Project:       strings.TrimSpace(req.Project),
		Location:      strings.TrimSpace(req.Location),
		JobTitle:      strings.TrimSpace(req.JobTitle),
		PaymentType:   employee.PaymentType(req.PaymentType),
		RateOfPayment: rate,
		Sponsorship:   employee.Sponsorship(req.Sponsorship),
		Status:        employee.NormalizeStatus(req.Status),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService. The record is
// re-read, patched field by field and rewritten; fields absent from the
// request keep their stored values.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	records, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var current *employee.Employee
	for i := range records {
		if records[i].ID == req.ID {
			current = &records[i]
			break
		}
	}
	if current == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	if req.IqamaNo != nil {
		iqamaNo := strings.TrimSpace(*req.IqamaNo)
		for _, existing := range records {
			if existing.ID != current.ID && existing.IqamaNo == iqamaNo {
				return employee.EmployeeResponse{}, employee.ErrIqamaNoExists
			}
		}
		current.IqamaNo = iqamaNo
	}
	if req.FullName != nil {
		current.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Project != nil {
		current.Project = strings.TrimSpace(*req.Project)
	}
	if req.Location != nil {
		current.Location = strings.TrimSpace(*req.Location)
	}
	if req.JobTitle != nil {
		current.JobTitle = strings.TrimSpace(*req.JobTitle)
	}
	if req.PaymentType != nil {
		current.PaymentType = employee.PaymentType(*req.PaymentType)
	}
	if req.RateOfPayment != nil {
		rate, _ := decimal.NewFromString(strings.TrimSpace(*req.RateOfPayment))
		current.RateOfPayment = rate
	}
	if req.Sponsorship != nil {
		current.Sponsorship = employee.Sponsorship(*req.Sponsorship)
	}
	if req.Status != nil {
		current.Status = employee.Status(*req.Status)
	}

	updated, err := s.employeeRepo.Update(ctx, *current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) findByID(ctx context.Context, id string) (employee.Employee, error) {
	records, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, emp := range records {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		FullName:      emp.FullName,
		IqamaNo:       emp.IqamaNo,
		Project:       emp.Project,
		Location:      emp.Location,
		JobTitle:      emp.JobTitle,
		PaymentType:   string(emp.PaymentType),
		RateOfPayment: emp.RateOfPayment.String(),
		Sponsorship:   string(emp.Sponsorship),
		Status:        string(emp.Status),
		CreatedAt:     emp.CreatedAt,
		UpdatedAt:     emp.UpdatedAt,
	}
}
