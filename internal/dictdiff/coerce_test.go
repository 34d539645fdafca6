package dictdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlogreplicator-go/dictionary/internal/dicterrors"
)

func numberImg(after []byte) ColumnImage {
	return ColumnImage{SourceType: TypeNumber, AfterPresent: after != nil, After: after}
}

func TestCoerceNumber16Valid(t *testing.T) {
	n, err := coerceNumber16(1, "SYS.COL$", "SCALE", numberImg([]byte("-5")))
	require.NoError(t, err)
	assert.Equal(t, int16(-5), n)
}

func TestCoerceNumber16WrongSourceType(t *testing.T) {
	_, err := coerceNumber16(1, "SYS.COL$", "SCALE", ColumnImage{SourceType: TypeVarchar, AfterPresent: true, After: []byte("5")})
	require.Error(t, err)
	var mismatch *dicterrors.DDLTypeMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestCoerceNumber16EmptyAfterResetsToDefault(t *testing.T) {
	n, err := coerceNumber16(1, "SYS.COL$", "SCALE", numberImg([]byte("")))
	require.NoError(t, err)
	assert.Equal(t, int16(0), n)
}

func TestCoerceNumber16AbsentAfterResetsToDefault(t *testing.T) {
	n, err := coerceNumber16(1, "SYS.COL$", "SCALE", ColumnImage{SourceType: TypeNumber})
	require.NoError(t, err)
	assert.Equal(t, int16(0), n)
}

func TestCoerceNumber16WrongTypeStillRejectsOnEmptyAfter(t *testing.T) {
	_, err := coerceNumber16(1, "SYS.COL$", "SCALE", ColumnImage{SourceType: TypeVarchar})
	require.Error(t, err, "type-check-before-parse: mismatch fires even with no after-image at all")
	var mismatch *dicterrors.DDLTypeMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestCoerceNumber16uRejectsNegative(t *testing.T) {
	_, err := coerceNumber16u(1, "SYS.COL$", "PRECISION#", numberImg([]byte("-1")))
	require.Error(t, err)
	var rejected *dicterrors.DDLValueRejected
	assert.ErrorAs(t, err, &rejected)
}

func TestCoerceNumber16uEmptyAfterResetsToDefault(t *testing.T) {
	n, err := coerceNumber16u(1, "SYS.COL$", "PRECISION#", numberImg([]byte("")))
	require.NoError(t, err)
	assert.Equal(t, uint16(0), n)
}

func TestCoerceNumber32uValid(t *testing.T) {
	n, err := coerceNumber32u(1, "SYS.OBJ$", "OBJ#", numberImg([]byte(" 42 ")))
	require.NoError(t, err)
	assert.Equal(t, uint32(42), n)
}

func TestCoerceNumber32uEmptyAfterResetsToDefault(t *testing.T) {
	n, err := coerceNumber32u(1, "SYS.OBJ$", "OBJ#", numberImg([]byte("")))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), n)
}

func TestCoerceNumber64AndNumber64u(t *testing.T) {
	signed, err := coerceNumber64(1, "t", "c", numberImg([]byte("-100")))
	require.NoError(t, err)
	assert.Equal(t, int64(-100), signed)

	_, err = coerceNumber64u(1, "t", "c", numberImg([]byte("-1")))
	assert.Error(t, err)
}

func TestCoerceNumber64EmptyAfterResetsToDefault(t *testing.T) {
	n, err := coerceNumber64(1, "t", "c", numberImg([]byte("")))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCoerceNumber64uEmptyAfterResetsToDefault(t *testing.T) {
	n, err := coerceNumber64u(1, "t", "c", numberImg([]byte("")))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
}

func TestCoerceBigUintAbsentIsNilNil(t *testing.T) {
	v, err := coerceBigUint(1, "SYS.TAB$", "PROPERTY", numberImg([]byte("")))
	require.NoError(t, err)
	assert.Nil(t, v, "an empty after-image is absent, not rejected")
}

func TestCoerceBigUintRejectsMalformed(t *testing.T) {
	_, err := coerceBigUint(1, "SYS.TAB$", "PROPERTY", numberImg([]byte("not-a-number")))
	require.Error(t, err)
	var rejected *dicterrors.DDLValueRejected
	assert.ErrorAs(t, err, &rejected)
}

func TestCoerceBigUintParsesLargeValue(t *testing.T) {
	v, err := coerceBigUint(1, "SYS.TAB$", "PROPERTY", numberImg([]byte("340282366920938463463374607431768211456")))
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "340282366920938463463374607431768211456", v.String())
}

func TestCoerceStringDecodesUnderCharset(t *testing.T) {
	s, err := coerceString(1, "SYS.OBJ$", "NAME", CharsetUS7ASCII, ColumnImage{SourceType: TypeVarchar, AfterPresent: true, After: []byte("EMPLOYEES")})
	require.NoError(t, err)
	assert.Equal(t, "EMPLOYEES", s)
}

func TestCoerceStringRejectsWrongSourceType(t *testing.T) {
	_, err := coerceString(1, "SYS.OBJ$", "NAME", CharsetUS7ASCII, ColumnImage{SourceType: TypeNumber, AfterPresent: true, After: []byte("x")})
	var mismatch *dicterrors.DDLTypeMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestCoerceStringEmptyAfterResetsToEmptyString(t *testing.T) {
	s, err := coerceString(1, "SYS.OBJ$", "NAME", CharsetUS7ASCII, ColumnImage{SourceType: TypeVarchar, AfterPresent: true, After: []byte("")})
	require.NoError(t, err)
	assert.Equal(t, "", s)
}
