package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFRenderer_ProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	err := NewPDFRenderer().Render(sampleData(), &buf)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output is not a PDF document")
	assert.Greater(t, buf.Len(), 1000)
}

func TestHexToRGB(t *testing.T) {
	r, g, b := hexToRGB("2B579A")
	assert.Equal(t, 0x2B, r)
	assert.Equal(t, 0x57, g)
	assert.Equal(t, 0x9A, b)

	r, g, b = hexToRGB("bogus!")
	assert.Equal(t, 0, r+g+b)
}
