package dictdiff

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/openlogreplicator-go/dictionary/internal/dicterrors"
)

// SourceType names the Oracle column type code a coercion rule checks
// before it ever looks at the bytes, mirroring the original's
// type-check-before-parse ordering (SPEC_FULL §11): a type mismatch is
// raised even against an empty or absent after-image.
type SourceType int

const (
	TypeNumber  SourceType = 2
	TypeVarchar SourceType = 1
	TypeChar    SourceType = 96
)

// coerceNumber16 parses a signed 16-bit NUMBER after-image. An absent or
// present-but-empty after-image resets the field to zero rather than
// failing to parse (SystemTransaction.cpp:149-169).
func coerceNumber16(offset uint64, table, col string, img ColumnImage) (int16, error) {
	if img.SourceType != TypeNumber {
		return 0, dicterrors.NewDDLTypeMismatch(offset, table, col, int(img.SourceType))
	}
	if !img.HasAfterValue() {
		return 0, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(string(img.After)), 10, 16)
	if err != nil {
		return 0, dicterrors.NewDDLValueRejected(offset, table, col, string(img.After), "not a signed 16-bit integer")
	}
	return int16(n), nil
}

// coerceNumber16u parses an unsigned 16-bit NUMBER after-image, rejecting
// a leading '-'. An absent or present-but-empty after-image resets the
// field to zero.
func coerceNumber16u(offset uint64, table, col string, img ColumnImage) (uint16, error) {
	if img.SourceType != TypeNumber {
		return 0, dicterrors.NewDDLTypeMismatch(offset, table, col, int(img.SourceType))
	}
	if !img.HasAfterValue() {
		return 0, nil
	}
	s := strings.TrimSpace(string(img.After))
	if strings.HasPrefix(s, "-") {
		return 0, dicterrors.NewDDLValueRejected(offset, table, col, s, "negative value for unsigned coercion")
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, dicterrors.NewDDLValueRejected(offset, table, col, s, "not an unsigned 16-bit integer")
	}
	return uint16(n), nil
}

// coerceNumber32u parses an unsigned 32-bit NUMBER after-image. An
// absent or present-but-empty after-image resets the field to zero.
func coerceNumber32u(offset uint64, table, col string, img ColumnImage) (uint32, error) {
	if img.SourceType != TypeNumber {
		return 0, dicterrors.NewDDLTypeMismatch(offset, table, col, int(img.SourceType))
	}
	if !img.HasAfterValue() {
		return 0, nil
	}
	s := strings.TrimSpace(string(img.After))
	if strings.HasPrefix(s, "-") {
		return 0, dicterrors.NewDDLValueRejected(offset, table, col, s, "negative value for unsigned coercion")
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, dicterrors.NewDDLValueRejected(offset, table, col, s, "not an unsigned 32-bit integer")
	}
	return uint32(n), nil
}

// coerceNumber64 parses a signed 64-bit NUMBER after-image. An absent or
// present-but-empty after-image resets the field to zero.
func coerceNumber64(offset uint64, table, col string, img ColumnImage) (int64, error) {
	if img.SourceType != TypeNumber {
		return 0, dicterrors.NewDDLTypeMismatch(offset, table, col, int(img.SourceType))
	}
	if !img.HasAfterValue() {
		return 0, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(string(img.After)), 10, 64)
	if err != nil {
		return 0, dicterrors.NewDDLValueRejected(offset, table, col, string(img.After), "not a signed 64-bit integer")
	}
	return n, nil
}

// coerceNumber64u parses an unsigned 64-bit NUMBER after-image. An
// absent or present-but-empty after-image resets the field to zero.
func coerceNumber64u(offset uint64, table, col string, img ColumnImage) (uint64, error) {
	if img.SourceType != TypeNumber {
		return 0, dicterrors.NewDDLTypeMismatch(offset, table, col, int(img.SourceType))
	}
	if !img.HasAfterValue() {
		return 0, nil
	}
	s := strings.TrimSpace(string(img.After))
	if strings.HasPrefix(s, "-") {
		return 0, dicterrors.NewDDLValueRejected(offset, table, col, s, "negative value for unsigned coercion")
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, dicterrors.NewDDLValueRejected(offset, table, col, s, "not an unsigned 64-bit integer")
	}
	return n, nil
}

// coerceBigUint parses an unsigned arbitrary-precision NUMBER after-image
// (the numberX unsigned coercion). A nil, nil return means "absent or
// present-but-empty": the caller resets the field to zero rather than
// treating it as rejected.
func coerceBigUint(offset uint64, table, col string, img ColumnImage) (*big.Int, error) {
	if img.SourceType != TypeNumber {
		return nil, dicterrors.NewDDLTypeMismatch(offset, table, col, int(img.SourceType))
	}
	if !img.HasAfterValue() {
		return nil, nil
	}
	s := strings.TrimSpace(string(img.After))
	if strings.HasPrefix(s, "-") {
		return nil, dicterrors.NewDDLValueRejected(offset, table, col, s, "negative value for unsigned coercion")
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, dicterrors.NewDDLValueRejected(offset, table, col, s, "not an unsigned arbitrary-precision integer")
	}
	return n, nil
}

// coerceString decodes a VARCHAR/CHAR after-image under the column's
// Oracle charset id (charset.go). An absent or present-but-empty
// after-image resets the field to the empty string.
func coerceString(offset uint64, table, col string, charsetID uint64, img ColumnImage) (string, error) {
	if img.SourceType != TypeVarchar && img.SourceType != TypeChar {
		return "", dicterrors.NewDDLTypeMismatch(offset, table, col, int(img.SourceType))
	}
	if !img.HasAfterValue() {
		return "", nil
	}
	decoded, err := decodeCharset(charsetID, img.After)
	if err != nil {
		return "", dicterrors.NewDDLValueRejected(offset, table, col, string(img.After), err.Error())
	}
	return decoded, nil
}
