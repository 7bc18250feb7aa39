package service

import (
	"context"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/export"
	"github.com/danielgrube/chronostaff/internal/report"
)

type EmployeeService interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByStaffNumber(ctx context.Context, staffNumber string) (*domain.Employee, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Reactivate(ctx context.Context, id string) error
	// Remove deactivates by default; permanent deletes the employee and
	// every time record attached to them.
	Remove(ctx context.Context, id string, permanent bool) error
}

// ConsolidateResult reports what a consolidation run merged.
type ConsolidateResult struct {
	// MergedDates lists the YYYY-MM-DD dates that had duplicate raw
	// entries, in date order.
	MergedDates []string
}

type RecordService interface {
	Add(ctx context.Context, rec *domain.TimeRecord) error
	GetByID(ctx context.Context, id string) (*domain.TimeRecord, error)
	ListMonth(ctx context.Context, employeeID string, year, month int) ([]*domain.TimeRecord, error)
	Update(ctx context.Context, rec *domain.TimeRecord) error
	Delete(ctx context.Context, id string) error
	// Consolidate merges duplicate same-date entries for one employee and
	// month into single records, atomically.
	Consolidate(ctx context.Context, employeeID string, year, month int) (*ConsolidateResult, error)
}

type ReportService interface {
	MonthlyReport(ctx context.Context, employeeID string, year, month int) (*report.Data, error)
	YearlyReport(ctx context.Context, employeeID string, year int) (*report.Data, error)
}

type SettingsService interface {
	Get(ctx context.Context, key string) (string, error)
	All(ctx context.Context) (map[string]string, error)
	// Set rejects values that would leave the settings table unusable, e.g.
	// malformed break rules.
	Set(ctx context.Context, key, value string) error
}

type ExportService interface {
	// Export builds the archive for the given staff numbers, or for every
	// employee when staffNumbers is empty.
	Export(ctx context.Context, staffNumbers []string, includeRecords bool) (export.Archive, error)
}

// ImportResult reports what an archive import created.
type ImportResult struct {
	EmployeeCount int
	RecordCount   int
}

type ImportService interface {
	// ImportArchive restores an exported JSON archive. All employees and
	// records land in one transaction; a staff number collision with the
	// existing roster aborts the whole import.
	ImportArchive(ctx context.Context, path string) (*ImportResult, error)
}
