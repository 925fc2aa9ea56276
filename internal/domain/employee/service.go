package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees retrieves employees matching the filter, preserving
	// the store's row order
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)

	// GetEmployee retrieves a single employee by id
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee validates and stores a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies a partial update to an existing employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee
	DeleteEmployee(ctx context.Context, id string) error
}
