package employee

import (
	"context"
	"fmt"

	"github.com/scon-hq/scon-backend-go/internal/domain/employee"
	"github.com/scon-hq/scon-backend-go/internal/domain/store"
	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
	authservice "github.com/scon-hq/scon-backend-go/internal/service/auth"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	storeRepo    store.StoreRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, storeRepo store.StoreRepository) employee.EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, storeID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.verifyStoreAccess(ctx, storeID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, storeID, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	preset := employee.ShiftPreset(req.ShiftPreset)
	if req.ShiftPreset == "" {
		preset = employee.ShiftPresetMorning
	}

	newEmployee := employee.Employee{
		StoreID:     storeID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		HourlyRate:  req.HourlyRate,
		Role:        employee.Role(req.Role),
		Color:       req.Color,
		ShiftPreset: preset,
	}
	if preset == employee.ShiftPresetCustom {
		newEmployee.CustomShiftStart = req.CustomShiftStart
		newEmployee.CustomShiftEnd = req.CustomShiftEnd
	}
	if req.PersonalHoliday != nil && *req.PersonalHoliday != "" {
		day, err := timeutil.ParseWeekday(*req.PersonalHoliday)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		newEmployee.PersonalHoliday = &day
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, storeID, id string) (employee.EmployeeResponse, error) {
	if err := s.verifyStoreAccess(ctx, storeID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	found, err := s.employeeRepo.GetByID(ctx, id, storeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(found), nil
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context, storeID string) ([]employee.EmployeeResponse, error) {
	if err := s.verifyStoreAccess(ctx, storeID); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetActiveByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, storeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.verifyStoreAccess(ctx, storeID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil {
		current, err := s.employeeRepo.GetByID(ctx, req.ID, storeID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if current.Email != *req.Email {
			exists, err := s.employeeRepo.ExistsByEmail(ctx, storeID, *req.Email)
			if err != nil {
				return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
			}
			if exists {
				return employee.EmployeeResponse{}, employee.ErrEmailExists
			}
		}
	}

	if err := s.employeeRepo.Update(ctx, storeID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID, storeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, storeID, id string) error {
	if err := s.verifyStoreAccess(ctx, storeID); err != nil {
		return err
	}
	return s.employeeRepo.SoftDelete(ctx, id, storeID)
}

func (s *employeeServiceImpl) verifyStoreAccess(ctx context.Context, storeID string) error {
	ownerID, err := authservice.OwnerIDFromContext(ctx)
	if err != nil {
		return err
	}

	st, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if st.OwnerID != ownerID {
		return store.ErrNotStoreOwner
	}
	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	window := emp.DefaultShift()

	resp := employee.EmployeeResponse{
		ID:                emp.ID,
		StoreID:           emp.StoreID,
		Name:              emp.Name,
		Email:             emp.Email,
		PhoneNumber:       emp.PhoneNumber,
		HourlyRate:        emp.HourlyRate,
		Role:              string(emp.Role),
		Color:             emp.Color,
		ShiftPreset:       string(emp.ShiftPreset),
		CustomShiftStart:  emp.CustomShiftStart,
		CustomShiftEnd:    emp.CustomShiftEnd,
		DefaultShiftStart: window.Start,
		DefaultShiftEnd:   window.End,
	}
	if emp.PersonalHoliday != nil {
		name := timeutil.WeekdayName(*emp.PersonalHoliday)
		resp.PersonalHoliday = &name
	}
	return resp
}
