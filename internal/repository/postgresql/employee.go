package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/employee"
	"github.com/scon-hq/scon-backend-go/internal/pkg/database"
	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, store_id, name, email, phone_number, hourly_rate, role, color,
	shift_preset, custom_shift_start, custom_shift_end, personal_holiday, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var role, preset string
	var holiday *int16
	err := row.Scan(&emp.ID, &emp.StoreID, &emp.Name, &emp.Email, &emp.PhoneNumber,
		&emp.HourlyRate, &role, &emp.Color, &preset,
		&emp.CustomShiftStart, &emp.CustomShiftEnd, &holiday, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	emp.Role = employee.Role(role)
	emp.ShiftPreset = employee.ShiftPreset(preset)
	emp.PersonalHoliday = weekdayFromDB(holiday)
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (store_id, name, email, phone_number, hourly_rate, role, color,
			shift_preset, custom_shift_start, custom_shift_end, personal_holiday)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		emp.StoreID, emp.Name, emp.Email, emp.PhoneNumber, emp.HourlyRate,
		string(emp.Role), emp.Color, string(emp.ShiftPreset),
		emp.CustomShiftStart, emp.CustomShiftEnd, weekdayToDB(emp.PersonalHoliday)))
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id, storeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, storeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetActiveByStoreID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByStoreID(ctx context.Context, storeID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE store_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, storeID, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE store_id = $1 AND email = $2 AND deleted_at IS NULL)`,
		storeID, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, storeID string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.HourlyRate != nil {
		updates["hourly_rate"] = *req.HourlyRate
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.ShiftPreset != nil {
		updates["shift_preset"] = *req.ShiftPreset
		if *req.ShiftPreset == string(employee.ShiftPresetCustom) {
			updates["custom_shift_start"] = req.CustomShiftStart
			updates["custom_shift_end"] = req.CustomShiftEnd
		} else {
			updates["custom_shift_start"] = nil
			updates["custom_shift_end"] = nil
		}
	}
	if req.PersonalHoliday != nil {
		if *req.PersonalHoliday == "" {
			updates["personal_holiday"] = nil
		} else {
			day, err := timeutil.ParseWeekday(*req.PersonalHoliday)
			if err != nil {
				return err
			}
			updates["personal_holiday"] = int16(day)
		}
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE employees SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND store_id = $%d AND deleted_at IS NULL RETURNING id", i, i+1)
	args = append(args, req.ID, storeID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee with id %s: %w", req.ID, err)
	}
	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id, storeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET deleted_at = NOW() WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL`,
		id, storeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
