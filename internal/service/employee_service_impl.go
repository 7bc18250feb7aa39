package service

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/repository"
	"github.com/google/uuid"
)

type employeeService struct {
	employees repository.EmployeeRepo
}

func NewEmployeeService(employees repository.EmployeeRepo) EmployeeService {
	return &employeeService{employees: employees}
}

func (s *employeeService) Create(ctx context.Context, e *domain.Employee) error {
	if e.Name == "" {
		return fmt.Errorf("employee name is required")
	}
	if e.StaffNumber == "" {
		return fmt.Errorf("staff number is required")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.HoursPerWeek <= 0 {
		e.HoursPerWeek = 40
	}
	e.Active = true
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.employees.Create(ctx, e)
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *employeeService) GetByStaffNumber(ctx context.Context, staffNumber string) (*domain.Employee, error) {
	return s.employees.GetByStaffNumber(ctx, staffNumber)
}

func (s *employeeService) List(ctx context.Context, includeInactive bool) ([]*domain.Employee, error) {
	return s.employees.List(ctx, includeInactive)
}

func (s *employeeService) Update(ctx context.Context, e *domain.Employee) error {
	if e.Name == "" {
		return fmt.Errorf("employee name is required")
	}
	e.UpdatedAt = time.Now().UTC()
	return s.employees.Update(ctx, e)
}

func (s *employeeService) Reactivate(ctx context.Context, id string) error {
	return s.employees.Reactivate(ctx, id)
}

func (s *employeeService) Remove(ctx context.Context, id string, permanent bool) error {
	if permanent {
		return s.employees.Delete(ctx, id)
	}
	return s.employees.Deactivate(ctx, id)
}
