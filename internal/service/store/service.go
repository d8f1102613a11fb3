package store

import (
	"context"
	"fmt"

	"github.com/scon-hq/scon-backend-go/internal/domain/store"
	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
	authservice "github.com/scon-hq/scon-backend-go/internal/service/auth"
)

type storeServiceImpl struct {
	storeRepo store.StoreRepository
}

func NewStoreService(storeRepo store.StoreRepository) store.StoreService {
	return &storeServiceImpl{storeRepo: storeRepo}
}

// Create implements store.StoreService.
func (s *storeServiceImpl) Create(ctx context.Context, req *store.CreateStoreRequest) (*store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := authservice.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	opening := timeutil.TruncateSeconds(req.OpenTime)
	closing := timeutil.TruncateSeconds(req.CloseTime)
	if opening == closing {
		return nil, store.ErrInvalidBusinessHours
	}

	newStore := &store.Store{
		OwnerID:      ownerID,
		Name:         req.Name,
		BusinessType: req.BusinessType,
		OpeningTime:  opening,
		ClosingTime:  closing,
	}
	if req.StoreHoliday != nil && *req.StoreHoliday != "" {
		day, err := timeutil.ParseWeekday(*req.StoreHoliday)
		if err != nil {
			return nil, err
		}
		newStore.WeeklyHoliday = &day
	}

	if err := s.storeRepo.Create(ctx, newStore); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return mapStoreToResponse(newStore), nil
}

// Get implements store.StoreService.
func (s *storeServiceImpl) Get(ctx context.Context, id string) (*store.StoreResponse, error) {
	found, err := s.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapStoreToResponse(found), nil
}

// List implements store.StoreService.
func (s *storeServiceImpl) List(ctx context.Context) ([]*store.StoreResponse, error) {
	ownerID, err := authservice.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*store.StoreResponse, 0, len(stores))
	for _, st := range stores {
		responses = append(responses, mapStoreToResponse(st))
	}
	return responses, nil
}

// Update implements store.StoreService.
func (s *storeServiceImpl) Update(ctx context.Context, req *store.UpdateStoreRequest) (*store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	found, err := s.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		found.Name = *req.Name
	}
	if req.BusinessType != nil {
		found.BusinessType = *req.BusinessType
	}
	if req.OpenTime != nil {
		found.OpeningTime = timeutil.TruncateSeconds(*req.OpenTime)
	}
	if req.CloseTime != nil {
		found.ClosingTime = timeutil.TruncateSeconds(*req.CloseTime)
	}
	if found.OpeningTime == found.ClosingTime {
		return nil, store.ErrInvalidBusinessHours
	}
	if req.StoreHoliday != nil {
		if *req.StoreHoliday == "" {
			found.WeeklyHoliday = nil
		} else {
			day, err := timeutil.ParseWeekday(*req.StoreHoliday)
			if err != nil {
				return nil, err
			}
			found.WeeklyHoliday = &day
		}
	}

	if err := s.storeRepo.Update(ctx, found); err != nil {
		return nil, err
	}
	return mapStoreToResponse(found), nil
}

// Delete implements store.StoreService.
func (s *storeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.getOwned(ctx, id); err != nil {
		return err
	}
	return s.storeRepo.SoftDelete(ctx, id)
}

func (s *storeServiceImpl) getOwned(ctx context.Context, id string) (*store.Store, error) {
	ownerID, err := authservice.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found.OwnerID != ownerID {
		return nil, store.ErrNotStoreOwner
	}
	return found, nil
}

func mapStoreToResponse(st *store.Store) *store.StoreResponse {
	resp := &store.StoreResponse{
		ID:           st.ID,
		Name:         st.Name,
		BusinessType: st.BusinessType,
		OpenTime:     timeutil.ExpandSeconds(st.OpeningTime),
		CloseTime:    timeutil.ExpandSeconds(st.ClosingTime),
	}
	if st.WeeklyHoliday != nil {
		name := timeutil.WeekdayName(*st.WeeklyHoliday)
		resp.StoreHoliday = &name
	}
	return resp
}
