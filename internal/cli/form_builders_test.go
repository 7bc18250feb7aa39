package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPeriodsLine(t *testing.T) {
	assert.Equal(t, []string{"09:00-12:00", "13:00-17:00"},
		splitPeriodsLine("09:00-12:00, 13:00-17:00"))
	assert.Equal(t, []string{"09:00-17:00"}, splitPeriodsLine("09:00-17:00"))
	assert.Empty(t, splitPeriodsLine(""))
}

func TestValidatePeriodsLine(t *testing.T) {
	assert.NoError(t, validatePeriodsLine(""))
	assert.NoError(t, validatePeriodsLine("09:00-12:00 13:00-17:00"))
	assert.Error(t, validatePeriodsLine("0900"))
	assert.Error(t, validatePeriodsLine("08:00-09:00 10:00-11:00 12:00-13:00 14:00-15:00"))
}

func TestValidateOptionalDate(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2023-06-30"))
	assert.Error(t, validateOptionalDate("30.06.2023"))
}
