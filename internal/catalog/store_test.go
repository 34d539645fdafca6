package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInsertFindRemove(t *testing.T) {
	s := NewStore[UserRow]()
	rec := &UserRow{RowID: mustParseRowId("AAAAAAAAAAAAAAAAAA"), UserID: 1, Name: "SYS"}

	s.insertPrimary(rec.RowID, rec)
	got, ok := s.FindByRowID(rec.RowID)
	require.True(t, ok)
	assert.Same(t, rec, got)
	assert.True(t, s.Has(rec.RowID))
	assert.Equal(t, 1, s.Len())

	removed := s.removePrimary(rec.RowID)
	assert.Same(t, rec, removed)
	assert.False(t, s.Has(rec.RowID))
	assert.Equal(t, 0, s.Len())
}

func TestStoreRemoveMissingReturnsNil(t *testing.T) {
	s := NewStore[UserRow]()
	assert.Nil(t, s.removePrimary(mustParseRowId("AAAAAAAAAAAAAAAAAA")))
}

func TestStoreTouchedSetIsSupersetSafe(t *testing.T) {
	s := NewStore[UserRow]()
	rec := &UserRow{RowID: mustParseRowId("AAAAAAAAAAAAAAAAAA")}
	s.insertPrimary(rec.RowID, rec)

	assert.False(t, s.IsTouched(rec.RowID))
	s.markTouched(rec.RowID, rec)
	assert.True(t, s.IsTouched(rec.RowID))
	assert.Len(t, s.Touched(), 1)

	s.ClearTouched()
	assert.False(t, s.IsTouched(rec.RowID))
	assert.Len(t, s.Touched(), 0)
}

func TestStoreRemovePrimaryAlsoClearsTouched(t *testing.T) {
	s := NewStore[UserRow]()
	rec := &UserRow{RowID: mustParseRowId("AAAAAAAAAAAAAAAAAA")}
	s.insertPrimary(rec.RowID, rec)
	s.markTouched(rec.RowID, rec)

	s.removePrimary(rec.RowID)
	assert.False(t, s.IsTouched(rec.RowID))
}

func TestStoreAllIsSortedAndStable(t *testing.T) {
	s := NewStore[UserRow]()
	ids := []RowId{
		NewRowId(3, 1, 1),
		NewRowId(1, 5, 2),
		NewRowId(1, 5, 1),
	}
	for _, id := range ids {
		rec := &UserRow{RowID: id}
		s.insertPrimary(id, rec)
	}

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, NewRowId(1, 5, 1), all[0])
	assert.Equal(t, NewRowId(1, 5, 2), all[1])
	assert.Equal(t, NewRowId(3, 1, 1), all[2])
}
