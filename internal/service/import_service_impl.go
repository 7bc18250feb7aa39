package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/danielgrube/chronostaff/internal/db"
	"github.com/danielgrube/chronostaff/internal/importer"
	"github.com/danielgrube/chronostaff/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportArchive(ctx context.Context, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	archive, err := importer.Read(f)
	if err != nil {
		return nil, err
	}
	if errs := importer.Validate(archive); len(errs) > 0 {
		return nil, fmt.Errorf("invalid archive: %w", errors.Join(errs...))
	}

	employees, records, err := importer.Convert(archive)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEmployees := repository.NewSQLiteEmployeeRepo(tx)
		txRecords := repository.NewSQLiteTimeRecordRepo(tx)

		for _, emp := range employees {
			if err := txEmployees.Create(ctx, emp); err != nil {
				return fmt.Errorf("importing employee %s: %w", emp.StaffNumber, err)
			}
			result.EmployeeCount++
			for _, rec := range records[emp.ID] {
				if err := txRecords.Create(ctx, rec); err != nil {
					return fmt.Errorf("importing record %s for %s: %w", rec.DateKey(), emp.StaffNumber, err)
				}
				result.RecordCount++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
