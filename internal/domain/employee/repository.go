package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id, storeID string) (Employee, error)
	GetActiveByStoreID(ctx context.Context, storeID string) ([]Employee, error)
	ExistsByEmail(ctx context.Context, storeID, email string) (bool, error)
	Update(ctx context.Context, storeID string, req UpdateEmployeeRequest) error
	SoftDelete(ctx context.Context, id, storeID string) error
}
