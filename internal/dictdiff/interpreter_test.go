package dictdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlogreplicator-go/dictionary/internal/catalog"
	"github.com/openlogreplicator-go/dictionary/internal/dicterrors"
)

func userInsertVector(userID, name string) *ValueVector {
	v := NewValueVector()
	v.SetColumn("USER#", TypeNumber, nil, []byte(userID))
	v.SetColumn("NAME", TypeVarchar, nil, []byte(name))
	return v
}

func TestInterpreterInsertThenFindByUserID(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, false, nil)
	rowID := catalog.NewRowId(1, 1, 1)

	err := in.OnInsert(TableUser, rowID, userInsertVector("1", "SYS"), 0)
	require.NoError(t, err)

	rec, ok := reg.User.FindByUserID(1)
	require.True(t, ok)
	assert.Equal(t, "SYS", rec.Name)
	assert.True(t, reg.Dirty())
}

func TestInterpreterDuplicateInsertNonAdaptiveIsFatal(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, false, nil)
	rowID := catalog.NewRowId(1, 1, 1)
	require.NoError(t, in.OnInsert(TableUser, rowID, userInsertVector("1", "SYS"), 0))

	err := in.OnInsert(TableUser, rowID, userInsertVector("1", "SYS"), 1)
	require.Error(t, err)
	var dup *dicterrors.DuplicateCatalogRow
	assert.ErrorAs(t, err, &dup)
}

func TestInterpreterDuplicateInsertAdaptiveReplaces(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, true, nil)
	rowID := catalog.NewRowId(1, 1, 1)
	require.NoError(t, in.OnInsert(TableUser, rowID, userInsertVector("1", "SYS"), 0))

	err := in.OnInsert(TableUser, rowID, userInsertVector("1", "SYSTEM"), 1)
	require.NoError(t, err)

	rec, ok := reg.User.FindByRowID(rowID)
	require.True(t, ok)
	assert.Equal(t, "SYSTEM", rec.Name)
}

func TestInterpreterUpdateMissingRowNonAdaptiveIsFatal(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, false, nil)
	rowID := catalog.NewRowId(9, 9, 9)

	v := NewValueVector()
	v.SetColumn("NAME", TypeVarchar, nil, []byte("GHOST"))
	err := in.OnUpdate(TableUser, rowID, v, 0)

	require.Error(t, err, "non-adaptive update against an absent rowid must be fatal, not merely logged")
	var missing *dicterrors.MissingCatalogRow
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "update", missing.Operation)
}

func TestInterpreterUpdateMissingRowAdaptiveSynthesizes(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, true, nil)
	rowID := catalog.NewRowId(9, 9, 9)

	v := NewValueVector()
	v.SetColumn("USER#", TypeNumber, nil, []byte("5"))
	v.SetColumn("NAME", TypeVarchar, nil, []byte("GHOST"))
	require.NoError(t, in.OnUpdate(TableUser, rowID, v, 0))

	rec, ok := reg.User.FindByRowID(rowID)
	require.True(t, ok)
	assert.Equal(t, "GHOST", rec.Name)
}

func TestInterpreterDeleteMissingRowNonAdaptiveIsFatal(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, false, nil)
	rowID := catalog.NewRowId(9, 9, 9)

	err := in.OnDelete(TableUser, rowID, 0)
	require.Error(t, err)
	var missing *dicterrors.MissingCatalogRow
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "delete", missing.Operation)
}

func TestInterpreterDeleteMissingRowAdaptiveIsANoop(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, true, nil)
	rowID := catalog.NewRowId(9, 9, 9)

	err := in.OnDelete(TableUser, rowID, 0)
	assert.NoError(t, err)
}

func TestInterpreterDeleteRemovesRowAndMarksDirty(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, false, nil)
	rowID := catalog.NewRowId(1, 1, 1)
	require.NoError(t, in.OnInsert(TableUser, rowID, userInsertVector("1", "SYS"), 0))
	reg.ClearDirty()

	require.NoError(t, in.OnDelete(TableUser, rowID, 1))

	_, ok := reg.User.FindByRowID(rowID)
	assert.False(t, ok)
	assert.True(t, reg.Dirty())
}

func TestInterpreterUnknownTableEnumErrors(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, false, nil)
	unknown := CatalogTable(999)

	assert.Error(t, in.OnInsert(unknown, catalog.NewRowId(0, 0, 1), NewValueVector(), 0))
	assert.Error(t, in.OnUpdate(unknown, catalog.NewRowId(0, 0, 1), NewValueVector(), 0))
	assert.Error(t, in.OnDelete(unknown, catalog.NewRowId(0, 0, 1), 0))
}

// TestInterpreterInsertWrongSourceTypeYieldsTypeMismatch proves the
// source type recorded on a ValueVector actually reaches the coercion
// through real dispatch (OnInsert), not just through direct coerce*
// unit calls — USER# is declared NUMBER but here is tagged TypeVarchar.
func TestInterpreterInsertWrongSourceTypeYieldsTypeMismatch(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, false, nil)
	rowID := catalog.NewRowId(1, 1, 1)

	v := NewValueVector()
	v.SetColumn("USER#", TypeVarchar, nil, []byte("1"))
	v.SetColumn("NAME", TypeVarchar, nil, []byte("SYS"))

	err := in.OnInsert(TableUser, rowID, v, 0)
	require.Error(t, err)
	var mismatch *dicterrors.DDLTypeMismatch
	assert.ErrorAs(t, err, &mismatch)
}

// TestInterpreterUpdateEmptyAfterImageResetsNumericField proves a
// present-but-empty after-image resets a numeric field to its default
// through real dispatch (OnUpdate), rather than being rejected as an
// unparseable integer.
func TestInterpreterUpdateEmptyAfterImageResetsNumericField(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, false, nil)
	rowID := catalog.NewRowId(1, 1, 1)
	require.NoError(t, in.OnInsert(TableUser, rowID, userInsertVector("1", "SYS"), 0))

	v := NewValueVector()
	v.SetColumn("SPARE1", TypeNumber, nil, []byte(""))
	require.NoError(t, in.OnUpdate(TableUser, rowID, v, 1))

	rec, ok := reg.User.FindByRowID(rowID)
	require.True(t, ok)
	assert.Nil(t, rec.Spare1, "an empty after-image resets SPARE1 to its default rather than rejecting")
}

// TestInterpreterUpdateUntouchedColumnIsLeftAlone proves a column that
// is mentioned in the operation (SetColumn is called for it) but
// carries neither a before- nor an after-image is left untouched,
// instead of its binding being invoked with a nil after-image and
// rejecting the field.
func TestInterpreterUpdateUntouchedColumnIsLeftAlone(t *testing.T) {
	reg := catalog.NewRegistry()
	in := New(reg, false, nil)
	rowID := catalog.NewRowId(1, 1, 1)
	require.NoError(t, in.OnInsert(TableUser, rowID, userInsertVector("1", "SYS"), 0))

	v := NewValueVector()
	v.SetColumn("NAME", TypeVarchar, nil, nil)
	require.NoError(t, in.OnUpdate(TableUser, rowID, v, 1))

	rec, ok := reg.User.FindByRowID(rowID)
	require.True(t, ok)
	assert.Equal(t, "SYS", rec.Name, "a column with no images at all must be left untouched, not reset")
}
