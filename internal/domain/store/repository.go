package store

import "context"

type StoreRepository interface {
	Create(ctx context.Context, store *Store) error
	GetByID(ctx context.Context, id string) (*Store, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*Store, error)
	Update(ctx context.Context, store *Store) error
	SoftDelete(ctx context.Context, id string) error
}
