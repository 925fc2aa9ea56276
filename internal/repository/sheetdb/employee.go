package sheetdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ydm-hr/hr-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	client *Client
}

func NewEmployeeRepository(client *Client) employee.EmployeeRepository {
	return &EmployeeRepository{client: client}
}

// List implements employee.EmployeeRepository.
func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	raw, err := r.client.call(ctx, opReadEmployees, nil)
	if err != nil {
		return nil, err
	}

	rows := decodeRows(raw)
	employees := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, employeeFromRow(row))
	}
	return employees, nil
}

// Create implements employee.EmployeeRepository. The surrogate id is
// minted here, at creation time, and stays authoritative from then on.
func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	now := time.Now().Format(time.RFC3339)
	emp.ID = uuid.NewString()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	raw, err := r.client.call(ctx, opAddEmployee, employeeToRow(emp))
	if err != nil {
		return employee.Employee{}, err
	}

	if row, ok := decodeRow(raw); ok {
		return employeeFromRow(row), nil
	}
	// Webhook acked without echoing the row; the local copy is what the
	// sheet now holds.
	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.UpdatedAt = time.Now().Format(time.RFC3339)

	raw, err := r.client.call(ctx, opUpdateEmployee, employeeToRow(emp))
	if err != nil {
		return employee.Employee{}, err
	}

	if row, ok := decodeRow(raw); ok {
		return employeeFromRow(row), nil
	}
	return emp, nil
}

// Delete implements employee.EmployeeRepository.
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.call(ctx, opDeleteEmployee, map[string]string{"id": id})
	return err
}

func employeeFromRow(row map[string]any) employee.Employee {
	rate, err := decimal.NewFromString(rowString(row, "rateOfPayment", "rate_of_payment"))
	if err != nil {
		rate = decimal.Zero
	}

	return employee.Employee{
		ID:            rowString(row, "id"),
		FullName:      rowString(row, "fullName", "full_name", "name"),
		IqamaNo:       rowString(row, "iqamaNo", "iqama_no", "iqamaNumber"),
		Project:       rowString(row, "project"),
		Location:      rowString(row, "location"),
		JobTitle:      rowString(row, "jobTitle", "job_title"),
		PaymentType:   employee.PaymentType(rowString(row, "paymentType", "payment_type")),
		RateOfPayment: rate,
		Sponsorship:   employee.Sponsorship(rowString(row, "sponsorship")),
		Status:        employee.NormalizeStatus(rowString(row, "status")),
		CreatedAt:     rowString(row, "created_at", "createdAt"),
		UpdatedAt:     rowString(row, "updated_at", "updatedAt"),
	}
}

// employeeToRow builds the wire row using the sheet's column names.
func employeeToRow(emp employee.Employee) map[string]any {
	return map[string]any{
		"id":            emp.ID,
		"fullName":      emp.FullName,
		"iqamaNo":       emp.IqamaNo,
		"project":       emp.Project,
		"location":      emp.Location,
		"jobTitle":      emp.JobTitle,
		"paymentType":   string(emp.PaymentType),
		"rateOfPayment": emp.RateOfPayment.String(),
		"sponsorship":   string(emp.Sponsorship),
		"status":        string(emp.Status),
		"created_at":    emp.CreatedAt,
		"updated_at":    emp.UpdatedAt,
	}
}
