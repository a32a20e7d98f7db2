package sheetengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_emptyByDefault(t *testing.T) {
	c := newCell(NewSheet())
	assert.Equal(t, TextValue(""), c.GetValue())
	assert.Equal(t, "", c.GetText())
	assert.Nil(t, c.GetReferencedCells())
}

func TestCell_textVariant(t *testing.T) {
	c := newCell(NewSheet())
	require.NoError(t, c.Set("hello"))
	assert.Equal(t, "hello", c.GetText())
	assert.Equal(t, TextValue("hello"), c.GetValue())
}

func TestCell_escapedApostrophe(t *testing.T) {
	c := newCell(NewSheet())
	require.NoError(t, c.Set("'7"))
	assert.Equal(t, "'7", c.GetText())
	assert.Equal(t, TextValue("7"), c.GetValue())
}

func TestCell_bareEqualsIsText(t *testing.T) {
	c := newCell(NewSheet())
	require.NoError(t, c.Set("="))
	assert.Equal(t, "=", c.GetText())
	assert.Equal(t, TextValue("="), c.GetValue())
}

func TestCell_formulaCanonicalizesText(t *testing.T) {
	c := newCell(NewSheet())
	require.NoError(t, c.Set("=1 + 2"))
	assert.Equal(t, "=1+2", c.GetText())
	assert.Equal(t, NumberValue(3), c.GetValue())
}

func TestCell_formulaParseFailureLeavesCellUnchanged(t *testing.T) {
	c := newCell(NewSheet())
	require.NoError(t, c.Set("previous"))
	err := c.Set("=1+")
	assert.Error(t, err)
	assert.Equal(t, "previous", c.GetText())
}

func TestCell_clearResetsToEmpty(t *testing.T) {
	c := newCell(NewSheet())
	require.NoError(t, c.Set("x"))
	require.NoError(t, c.Clear())
	assert.Equal(t, "", c.GetText())
	assert.Equal(t, TextValue(""), c.GetValue())
}

func TestCell_referencedFlagDefaultsFalse(t *testing.T) {
	c := newCell(NewSheet())
	assert.False(t, c.IsReferenced())
}
