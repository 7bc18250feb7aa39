package repository

import (
	"context"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
)

type EmployeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByStaffNumber(ctx context.Context, staffNumber string) (*domain.Employee, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Deactivate(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TimeRecordRepo interface {
	Create(ctx context.Context, r *domain.TimeRecord) error
	GetByID(ctx context.Context, id string) (*domain.TimeRecord, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]*domain.TimeRecord, error)
	Update(ctx context.Context, r *domain.TimeRecord) error
	Delete(ctx context.Context, id string) error
	DeleteByEmployeeDate(ctx context.Context, employeeID string, date time.Time) error
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}
