package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielgrube/chronostaff/internal/db"
	"github.com/danielgrube/chronostaff/internal/domain"
)

// SQLiteTimeRecordRepo implements TimeRecordRepo using a SQLite database.
type SQLiteTimeRecordRepo struct {
	db db.DBTX
}

// NewSQLiteTimeRecordRepo creates a new SQLiteTimeRecordRepo.
func NewSQLiteTimeRecordRepo(conn db.DBTX) *SQLiteTimeRecordRepo {
	return &SQLiteTimeRecordRepo{db: conn}
}

const recordColumns = `id, employee_id, date,
	period1_start, period1_end, period2_start, period2_end, period3_start, period3_end,
	record_type, notes, created_at, updated_at`

func (r *SQLiteTimeRecordRepo) Create(ctx context.Context, rec *domain.TimeRecord) error {
	if len(rec.Periods) > domain.MaxPeriods {
		return fmt.Errorf("time record has %d periods (max %d)", len(rec.Periods), domain.MaxPeriods)
	}
	query := `INSERT INTO time_records (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	cols := periodColumns(rec.Periods)
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.DateKey(),
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5],
		string(rec.Type),
		rec.Notes,
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting time record: %w", err)
	}
	return nil
}

func (r *SQLiteTimeRecordRepo) GetByID(ctx context.Context, id string) (*domain.TimeRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM time_records WHERE id = ?`
	rec, err := scanRecordFrom(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning time record: %w", err)
	}
	return rec, nil
}

// ListByEmployee returns all records for the employee whose date falls in
// [from, to], ordered by date then entry time. Raw duplicates per date are
// returned as stored; consolidation is the service layer's concern.
func (r *SQLiteTimeRecordRepo) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]*domain.TimeRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM time_records
		WHERE employee_id = ? AND date >= ? AND date <= ?
		ORDER BY date, created_at`
	rows, err := r.db.QueryContext(ctx, query,
		employeeID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing time records: %w", err)
	}
	defer rows.Close()

	var records []*domain.TimeRecord
	for rows.Next() {
		rec, err := scanRecordFrom(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning time record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SQLiteTimeRecordRepo) Update(ctx context.Context, rec *domain.TimeRecord) error {
	if len(rec.Periods) > domain.MaxPeriods {
		return fmt.Errorf("time record has %d periods (max %d)", len(rec.Periods), domain.MaxPeriods)
	}
	query := `UPDATE time_records SET
		date = ?, period1_start = ?, period1_end = ?, period2_start = ?, period2_end = ?,
		period3_start = ?, period3_end = ?, record_type = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	cols := periodColumns(rec.Periods)
	res, err := r.db.ExecContext(ctx, query,
		rec.DateKey(),
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5],
		string(rec.Type),
		rec.Notes,
		rec.UpdatedAt.Format(time.RFC3339),
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("updating time record: %w", err)
	}
	return requireRowAffected(res, "time record")
}

func (r *SQLiteTimeRecordRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting time record: %w", err)
	}
	return requireRowAffected(res, "time record")
}

// DeleteByEmployeeDate removes every record the employee has on the date.
// Used by consolidation before re-inserting the merged record.
func (r *SQLiteTimeRecordRepo) DeleteByEmployeeDate(ctx context.Context, employeeID string, date time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM time_records WHERE employee_id = ? AND date = ?`,
		employeeID, date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("deleting time records for date: %w", err)
	}
	return nil
}

func scanRecordFrom(scan func(dest ...any) error) (*domain.TimeRecord, error) {
	var rec domain.TimeRecord
	var dateStr, typeStr, createdAt, updatedAt string
	var cols [domain.MaxPeriods * 2]sql.NullString

	err := scan(
		&rec.ID, &rec.EmployeeID, &dateStr,
		&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5],
		&typeStr, &rec.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rec.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if rec.Periods, err = scanPeriods(cols); err != nil {
		return nil, err
	}
	rec.Type = domain.RecordType(typeStr)
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rec, nil
}
