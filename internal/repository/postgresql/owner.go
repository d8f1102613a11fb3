package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/owner"
	"github.com/scon-hq/scon-backend-go/internal/pkg/database"
)

type ownerRepositoryImpl struct {
	db *database.DB
}

func NewOwnerRepository(db *database.DB) owner.OwnerRepository {
	return &ownerRepositoryImpl{db: db}
}

// Create implements owner.OwnerRepository.
func (r *ownerRepositoryImpl) Create(ctx context.Context, o *owner.Owner) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO owners (email, password_hash, name, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, o.Email, o.PasswordHash, o.Name, o.PhoneNumber).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create owner: %w", err)
	}
	return nil
}

// GetByID implements owner.OwnerRepository.
func (r *ownerRepositoryImpl) GetByID(ctx context.Context, id string) (*owner.Owner, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, name, phone_number, created_at, updated_at
		FROM owners
		WHERE id = $1 AND deleted_at IS NULL
	`

	var found owner.Owner
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Email, &found.PasswordHash, &found.Name, &found.PhoneNumber, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, owner.ErrOwnerNotFound
		}
		return nil, err
	}
	return &found, nil
}

// GetByEmail implements owner.OwnerRepository.
func (r *ownerRepositoryImpl) GetByEmail(ctx context.Context, email string) (*owner.Owner, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, name, phone_number, created_at, updated_at
		FROM owners
		WHERE email = $1 AND deleted_at IS NULL
	`

	var found owner.Owner
	err := q.QueryRow(ctx, query, email).
		Scan(&found.ID, &found.Email, &found.PasswordHash, &found.Name, &found.PhoneNumber, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, owner.ErrOwnerNotFound
		}
		return nil, err
	}
	return &found, nil
}

// ExistsByEmail implements owner.OwnerRepository.
func (r *ownerRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM owners WHERE email = $1 AND deleted_at IS NULL)`, email).
		Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements owner.OwnerRepository.
func (r *ownerRepositoryImpl) Update(ctx context.Context, o *owner.Owner) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE owners
		SET email = $2, password_hash = $3, name = $4, phone_number = $5, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, o.ID, o.Email, o.PasswordHash, o.Name, o.PhoneNumber).
		Scan(&o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return owner.ErrOwnerNotFound
		}
		return fmt.Errorf("failed to update owner with id %s: %w", o.ID, err)
	}
	return nil
}
