package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		rules   []BreakRule
		wantErr bool
	}{
		{"defaults", DefaultConfig().BreakRules, false},
		{"single rule", []BreakRule{{360, 30}}, false},
		{"missing rules", nil, true},
		{"descending thresholds", []BreakRule{{540, 45}, {360, 30}}, true},
		{"duplicate thresholds", []BreakRule{{360, 30}, {360, 45}}, true},
		{"negative threshold", []BreakRule{{-1, 30}}, true},
		{"negative break", []BreakRule{{360, -30}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.BreakRules = tt.rules
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequiredBreak_StepFunction(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0, cfg.requiredBreak(0))
	assert.Equal(t, 0, cfg.requiredBreak(359))
	assert.Equal(t, 30, cfg.requiredBreak(360))
	assert.Equal(t, 30, cfg.requiredBreak(480))
	assert.Equal(t, 30, cfg.requiredBreak(539))
	// Only the highest applicable tier counts; tiers are not additive.
	assert.Equal(t, 45, cfg.requiredBreak(540))
	assert.Equal(t, 45, cfg.requiredBreak(720))
}

func TestComputeDayResult_InvalidConfig(t *testing.T) {
	rec := day("2023-01-02", "work", period("09:00", "17:00"))
	cfg := DefaultConfig()
	cfg.BreakRules = nil

	_, err := ComputeDayResult(rec, cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = ComputePeriodSummary(nil, cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
