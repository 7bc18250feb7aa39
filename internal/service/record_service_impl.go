package service

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgrube/chronostaff/internal/db"
	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/repository"
	"github.com/danielgrube/chronostaff/internal/timesheet"
	"github.com/google/uuid"
)

type recordService struct {
	records   repository.TimeRecordRepo
	employees repository.EmployeeRepo
	uow       db.UnitOfWork
}

func NewRecordService(records repository.TimeRecordRepo, employees repository.EmployeeRepo, uow db.UnitOfWork) RecordService {
	return &recordService{records: records, employees: employees, uow: uow}
}

func validateRecord(rec *domain.TimeRecord) error {
	if !domain.ValidRecordTypes[rec.Type] {
		return fmt.Errorf("invalid record type %q", rec.Type)
	}
	if len(rec.Periods) > domain.MaxPeriods {
		return fmt.Errorf("%w: %d periods (max %d)", timesheet.ErrTooManyPeriods,
			len(rec.Periods), domain.MaxPeriods)
	}
	for i, p := range rec.Periods {
		if p.End <= p.Start {
			return fmt.Errorf("%w: period %d (%s-%s)", timesheet.ErrInvalidPeriod,
				i+1, p.Start, p.End)
		}
	}
	return nil
}

func (s *recordService) Add(ctx context.Context, rec *domain.TimeRecord) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	emp, err := s.employees.GetByID(ctx, rec.EmployeeID)
	if err != nil {
		return err
	}
	if !emp.Active {
		return fmt.Errorf("employee %s is inactive", emp.StaffNumber)
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	// Imports carry their own entry timestamps; keep them so consolidation
	// merges in the original entry order.
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	return s.records.Create(ctx, rec)
}

func (s *recordService) GetByID(ctx context.Context, id string) (*domain.TimeRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *recordService) ListMonth(ctx context.Context, employeeID string, year, month int) ([]*domain.TimeRecord, error) {
	from, to, err := monthRange(year, month)
	if err != nil {
		return nil, err
	}
	return s.records.ListByEmployee(ctx, employeeID, from, to)
}

func (s *recordService) Update(ctx context.Context, rec *domain.TimeRecord) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	rec.UpdatedAt = time.Now().UTC()
	return s.records.Update(ctx, rec)
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

// Consolidate merges duplicate same-date raw entries for one employee and
// month. The delete-then-reinsert of each merged date runs inside a single
// transaction so a failure leaves the raw entries untouched.
func (s *recordService) Consolidate(ctx context.Context, employeeID string, year, month int) (*ConsolidateResult, error) {
	records, err := s.ListMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	rawPerDate := make(map[string]int)
	values := make([]domain.TimeRecord, 0, len(records))
	for _, rec := range records {
		rawPerDate[rec.DateKey()]++
		values = append(values, *rec)
	}

	merged, err := timesheet.Deduplicate(values)
	if err != nil {
		return nil, err
	}

	result := &ConsolidateResult{}
	var toWrite []domain.TimeRecord
	for _, rec := range merged {
		if rawPerDate[rec.DateKey()] > 1 {
			result.MergedDates = append(result.MergedDates, rec.DateKey())
			toWrite = append(toWrite, rec)
		}
	}
	if len(toWrite) == 0 {
		return result, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteTimeRecordRepo(tx)
		for _, rec := range toWrite {
			if err := txRecords.DeleteByEmployeeDate(ctx, employeeID, rec.Date); err != nil {
				return fmt.Errorf("clearing %s: %w", rec.DateKey(), err)
			}
			rec.ID = uuid.New().String()
			if err := txRecords.Create(ctx, &rec); err != nil {
				return fmt.Errorf("writing merged %s: %w", rec.DateKey(), err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// monthRange returns the first and last day of the month as midnight UTC
// dates, matching the date granularity of stored records.
func monthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %d", month)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}
