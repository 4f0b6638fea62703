package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	f, err := Parse("csv")
	require.NoError(t, err)
	assert.Equal(t, Csv, f)
	assert.Equal(t, ".csv", f.Ext())

	f, err = Parse("html")
	require.NoError(t, err)
	assert.Equal(t, ".html", f.Ext())

	_, err = Parse("png")
	assert.Error(t, err)
}
