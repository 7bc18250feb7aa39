package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielgrube/chronostaff/internal/db"
	"github.com/danielgrube/chronostaff/internal/domain"
)

// SQLiteEmployeeRepo implements EmployeeRepo using a SQLite database.
type SQLiteEmployeeRepo struct {
	db db.DBTX
}

// NewSQLiteEmployeeRepo creates a new SQLiteEmployeeRepo.
func NewSQLiteEmployeeRepo(conn db.DBTX) *SQLiteEmployeeRepo {
	return &SQLiteEmployeeRepo{db: conn}
}

const employeeColumns = `id, name, staff_number, position, hourly_rate, email, hire_date,
	hours_per_week, vacation_days_per_year, sick_days_per_year, active, created_at, updated_at`

func (r *SQLiteEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (` + employeeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		e.StaffNumber,
		e.Position,
		e.HourlyRate,
		e.Email,
		nullableTimeToString(e.HireDate, dateLayout),
		e.HoursPerWeek,
		e.VacationDaysPerYear,
		e.SickDaysPerYear,
		boolToInt(e.Active),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee %s: %w", e.StaffNumber, ErrDuplicateStaffNumber)
		}
		return fmt.Errorf("inserting employee: %w", err)
	}
	return nil
}

func (r *SQLiteEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	return r.scanEmployee(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteEmployeeRepo) GetByStaffNumber(ctx context.Context, staffNumber string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE staff_number = ?`
	return r.scanEmployee(r.db.QueryRowContext(ctx, query, staffNumber))
}

func (r *SQLiteEmployeeRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	if !includeInactive {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		e, err := r.scanEmployeeRow(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *SQLiteEmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET
		name = ?, staff_number = ?, position = ?, hourly_rate = ?, email = ?, hire_date = ?,
		hours_per_week = ?, vacation_days_per_year = ?, sick_days_per_year = ?, active = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Name,
		e.StaffNumber,
		e.Position,
		e.HourlyRate,
		e.Email,
		nullableTimeToString(e.HireDate, dateLayout),
		e.HoursPerWeek,
		e.VacationDaysPerYear,
		e.SickDaysPerYear,
		boolToInt(e.Active),
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee %s: %w", e.StaffNumber, ErrDuplicateStaffNumber)
		}
		return fmt.Errorf("updating employee: %w", err)
	}
	return requireRowAffected(res, "employee")
}

func (r *SQLiteEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return r.setActive(ctx, id, false)
}

func (r *SQLiteEmployeeRepo) Reactivate(ctx context.Context, id string) error {
	return r.setActive(ctx, id, true)
}

func (r *SQLiteEmployeeRepo) setActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE employees SET active = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(active), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating employee active flag: %w", err)
	}
	return requireRowAffected(res, "employee")
}

// Delete removes the employee permanently; time records follow through the
// ON DELETE CASCADE constraint.
func (r *SQLiteEmployeeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	return requireRowAffected(res, "employee")
}

func (r *SQLiteEmployeeRepo) scanEmployee(row *sql.Row) (*domain.Employee, error) {
	e, err := scanEmployeeFrom(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("employee: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning employee: %w", err)
	}
	return e, nil
}

func (r *SQLiteEmployeeRepo) scanEmployeeRow(rows *sql.Rows) (*domain.Employee, error) {
	e, err := scanEmployeeFrom(rows.Scan)
	if err != nil {
		return nil, fmt.Errorf("scanning employee: %w", err)
	}
	return e, nil
}

func scanEmployeeFrom(scan func(dest ...any) error) (*domain.Employee, error) {
	var e domain.Employee
	var hireDate sql.NullString
	var active int
	var createdAt, updatedAt string

	err := scan(
		&e.ID, &e.Name, &e.StaffNumber, &e.Position, &e.HourlyRate, &e.Email, &hireDate,
		&e.HoursPerWeek, &e.VacationDaysPerYear, &e.SickDaysPerYear, &active, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.HireDate = parseNullableTime(hireDate, dateLayout)
	e.Active = intToBool(active)
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
