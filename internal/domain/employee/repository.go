package employee

import "context"

// EmployeeRepository defines data access for employee records. The
// implementation talks to the entity store webhook; the authoritative copy
// lives there and every read returns a fresh snapshot.
type EmployeeRepository interface {
	// List retrieves the full employee collection
	List(ctx context.Context) ([]Employee, error)

	// Create appends a new employee row and returns the stored record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// Update rewrites an existing employee row identified by emp.ID
	Update(ctx context.Context, emp Employee) (Employee, error)

	// Delete removes the employee row with the given id
	Delete(ctx context.Context, id string) error
}
