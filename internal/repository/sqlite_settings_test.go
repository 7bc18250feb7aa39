package repository

import (
	"context"
	"testing"

	"github.com/danielgrube/chronostaff/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_SeededDefaults(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	value, err := repo.Get(ctx, "standard_hours_per_day")
	require.NoError(t, err)
	assert.Equal(t, "8", value)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "360:30,540:45", all["break_rules"])
	assert.Equal(t, "My Company GmbH", all["company_name"])
}

func TestSettingsRepo_SetOverwrites(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "standard_hours_per_day", "7.5"))
	value, err := repo.Get(ctx, "standard_hours_per_day")
	require.NoError(t, err)
	assert.Equal(t, "7.5", value)

	require.NoError(t, repo.Set(ctx, "brand_new_key", "yes"))
	value, err = repo.Get(ctx, "brand_new_key")
	require.NoError(t, err)
	assert.Equal(t, "yes", value)
}

func TestSettingsRepo_Get_NotFound(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "no_such_setting")
	assert.ErrorIs(t, err, ErrNotFound)
}
