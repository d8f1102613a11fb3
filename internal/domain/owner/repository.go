package owner

import "context"

type OwnerRepository interface {
	Create(ctx context.Context, owner *Owner) error
	GetByID(ctx context.Context, id string) (*Owner, error)
	GetByEmail(ctx context.Context, email string) (*Owner, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, owner *Owner) error
}
