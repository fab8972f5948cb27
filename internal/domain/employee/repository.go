package employee

import "context"

// EmployeeRepository reads the employee directory. The directory is owned by
// the surrounding portal; this service never writes to it.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
}
