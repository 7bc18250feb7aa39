package service

import (
	"context"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/export"
	"github.com/danielgrube/chronostaff/internal/repository"
)

// exportRangeYears bounds the record lookup per employee; records older than
// this are not part of an export.
const exportRangeYears = 50

type exportService struct {
	employees repository.EmployeeRepo
	records   repository.TimeRecordRepo
	now       func() time.Time
}

func NewExportService(employees repository.EmployeeRepo, records repository.TimeRecordRepo) ExportService {
	return &exportService{employees: employees, records: records, now: time.Now}
}

func (s *exportService) Export(ctx context.Context, staffNumbers []string, includeRecords bool) (export.Archive, error) {
	var selected []*domain.Employee
	if len(staffNumbers) == 0 {
		all, err := s.employees.List(ctx, true)
		if err != nil {
			return export.Archive{}, err
		}
		selected = all
	} else {
		for _, sn := range staffNumbers {
			emp, err := s.employees.GetByStaffNumber(ctx, sn)
			if err != nil {
				return export.Archive{}, err
			}
			selected = append(selected, emp)
		}
	}

	var recordsByEmployee map[string][]*domain.TimeRecord
	if includeRecords {
		now := s.now().UTC()
		from := now.AddDate(-exportRangeYears, 0, 0)
		recordsByEmployee = make(map[string][]*domain.TimeRecord, len(selected))
		for _, emp := range selected {
			recs, err := s.records.ListByEmployee(ctx, emp.ID, from, now)
			if err != nil {
				return export.Archive{}, err
			}
			recordsByEmployee[emp.ID] = recs
		}
	}

	return export.BuildArchive(selected, recordsByEmployee, s.now()), nil
}
