package sheetengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := map[string]Position{
		"A1":   {Row: 0, Col: 0},
		"AB32": {Row: 31, Col: 27},
		"Z25":  {Row: 24, Col: 25},
		"AA1":  {Row: 0, Col: 26},
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := ParsePosition(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParsePosition_syntaxErrors(t *testing.T) {
	for _, in := range []string{"", "1A", "A0", "A01", "a1", "A"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePosition(in)
			assert.Error(t, err)
		})
	}
}

func TestPosition_String_roundTrip(t *testing.T) {
	for _, in := range []string{"A1", "Z1", "AA1", "AB32", "ZZ16384"} {
		t.Run(in, func(t *testing.T) {
			pos, err := ParsePosition(in)
			require.NoError(t, err)
			assert.Equal(t, in, pos.String())
		})
	}
}

func TestPosition_IsValid(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 0}.IsValid())
	assert.True(t, Position{Row: MaxRows - 1, Col: MaxCols - 1}.IsValid())
	assert.False(t, Position{Row: -1, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: -1}.IsValid())
	assert.False(t, Position{Row: MaxRows, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: MaxCols}.IsValid())
}
