package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowIdRoundTripsThroughString(t *testing.T) {
	r := NewRowId(12345, 987654, 7)

	encoded := r.String()
	assert.Len(t, encoded, 18)

	parsed, err := ParseRowId(encoded)
	require.NoError(t, err)
	assert.Equal(t, r, parsed)
}

func TestRowIdZeroIsZero(t *testing.T) {
	assert.True(t, RowId{}.IsZero())
	assert.False(t, NewRowId(1, 0, 0).IsZero())
}

func TestParseRowIdRejectsWrongLength(t *testing.T) {
	_, err := ParseRowId("short")
	assert.Error(t, err)
}

func TestParseRowIdRejectsBadCharacter(t *testing.T) {
	bad := "AAAAAAAAAAAAAAAA!A"
	_, err := ParseRowId(bad)
	assert.Error(t, err)
}

func TestRowIdLessOrdersByDataObjThenDbaThenSlot(t *testing.T) {
	a := NewRowId(1, 1, 1)
	b := NewRowId(1, 1, 2)
	c := NewRowId(1, 2, 0)
	d := NewRowId(2, 0, 0)

	assert.True(t, rowIdLess(a, b))
	assert.True(t, rowIdLess(b, c))
	assert.True(t, rowIdLess(c, d))
	assert.False(t, rowIdLess(b, a))
}
