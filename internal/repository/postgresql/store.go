package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/store"
	"github.com/scon-hq/scon-backend-go/internal/pkg/database"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepositoryImpl{db: db}
}

// Weekly holidays are stored as smallint 0..6 (Sunday = 0), matching
// time.Weekday.
func weekdayToDB(d *time.Weekday) interface{} {
	if d == nil {
		return nil
	}
	return int16(*d)
}

func weekdayFromDB(v *int16) *time.Weekday {
	if v == nil {
		return nil
	}
	d := time.Weekday(*v)
	return &d
}

// Create implements store.StoreRepository.
func (r *storeRepositoryImpl) Create(ctx context.Context, s *store.Store) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stores (owner_id, name, business_type, opening_time, closing_time, weekly_holiday)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.OwnerID, s.Name, s.BusinessType, s.OpeningTime, s.ClosingTime, weekdayToDB(s.WeeklyHoliday)).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// GetByID implements store.StoreRepository.
func (r *storeRepositoryImpl) GetByID(ctx context.Context, id string) (*store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, business_type, opening_time, closing_time, weekly_holiday, created_at, updated_at
		FROM stores
		WHERE id = $1 AND deleted_at IS NULL
	`

	var found store.Store
	var holiday *int16
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.OwnerID, &found.Name, &found.BusinessType,
			&found.OpeningTime, &found.ClosingTime, &holiday, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrStoreNotFound
		}
		return nil, err
	}
	found.WeeklyHoliday = weekdayFromDB(holiday)
	return &found, nil
}

// GetByOwnerID implements store.StoreRepository.
func (r *storeRepositoryImpl) GetByOwnerID(ctx context.Context, ownerID string) ([]*store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, business_type, opening_time, closing_time, weekly_holiday, created_at, updated_at
		FROM stores
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []*store.Store
	for rows.Next() {
		var s store.Store
		var holiday *int16
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.BusinessType,
			&s.OpeningTime, &s.ClosingTime, &holiday, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.WeeklyHoliday = weekdayFromDB(holiday)
		stores = append(stores, &s)
	}
	return stores, rows.Err()
}

// Update implements store.StoreRepository.
func (r *storeRepositoryImpl) Update(ctx context.Context, s *store.Store) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stores
		SET name = $2, business_type = $3, opening_time = $4, closing_time = $5, weekly_holiday = $6, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.BusinessType, s.OpeningTime, s.ClosingTime, weekdayToDB(s.WeeklyHoliday)).
		Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrStoreNotFound
		}
		return fmt.Errorf("failed to update store with id %s: %w", s.ID, err)
	}
	return nil
}

// SoftDelete implements store.StoreRepository.
func (r *storeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE stores SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}
	return nil
}
