package service

import (
	"context"
	"fmt"

	"github.com/danielgrube/chronostaff/internal/config"
	"github.com/danielgrube/chronostaff/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context, key string) (string, error) {
	return s.settings.Get(ctx, key)
}

func (s *settingsService) All(ctx context.Context) (map[string]string, error) {
	return s.settings.All(ctx)
}

func (s *settingsService) Set(ctx context.Context, key, value string) error {
	all, err := s.settings.All(ctx)
	if err != nil {
		return err
	}
	all[key] = value
	if _, _, _, err := config.FromSettings(all); err != nil {
		return fmt.Errorf("rejecting %s=%q: %w", key, value, err)
	}
	return s.settings.Set(ctx, key, value)
}
