package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"17:05", 1025, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"-1:30", 0, true},
		{"0900", 0, true},
		{"nine", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Minutes())
		})
	}
}

func TestClockString_RoundTrip(t *testing.T) {
	c, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, "08:30", c.String())
}

func TestPeriodMinutes(t *testing.T) {
	p := Period{Start: MustClock("09:00"), End: MustClock("17:00")}
	assert.Equal(t, 480, p.Minutes())

	inverted := Period{Start: MustClock("17:00"), End: MustClock("09:00")}
	assert.Negative(t, inverted.Minutes())
}
