package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueIndexAddFindRemove(t *testing.T) {
	idx := NewUniqueIndex[uint32, UserRow]()
	rec := &UserRow{UserID: 42}

	idx.Add(rec.UserID, rec)
	got, ok := idx.Find(42)
	require.True(t, ok)
	assert.Same(t, rec, got)

	idx.Remove(42, rec)
	_, ok = idx.Find(42)
	assert.False(t, ok)
}

func TestUniqueIndexRemoveIgnoresStaleRecord(t *testing.T) {
	idx := NewUniqueIndex[uint32, UserRow]()
	first := &UserRow{UserID: 1}
	second := &UserRow{UserID: 1}

	idx.Add(1, first)
	idx.Add(1, second) // later Add replaces the mapping
	idx.Remove(1, first)

	got, ok := idx.Find(1)
	require.True(t, ok, "remove of a record that no longer owns the key must be a no-op")
	assert.Same(t, second, got)
}

func TestOrderedIndexScanIsOrderedByK2(t *testing.T) {
	idx := NewOrderedIndex[uint32, int16, ColRow](colOrderLess)
	recs := []*ColRow{
		{InternalCol: 3},
		{InternalCol: 1},
		{InternalCol: 2},
	}
	for _, r := range recs {
		idx.Add(100, r.InternalCol, r)
	}

	scanned := idx.Scan(100)
	require.Len(t, scanned, 3)
	assert.Equal(t, int16(1), scanned[0].InternalCol)
	assert.Equal(t, int16(2), scanned[1].InternalCol)
	assert.Equal(t, int16(3), scanned[2].InternalCol)
}

func TestOrderedIndexAllowsDuplicateK2(t *testing.T) {
	idx := NewOrderedIndex[uint32, int16, ColRow](colOrderLess)
	a := &ColRow{InternalCol: 5, Name: "A"}
	b := &ColRow{InternalCol: 5, Name: "B"}

	idx.Add(1, a.InternalCol, a)
	idx.Add(1, b.InternalCol, b)

	assert.Equal(t, 2, idx.Len(1))
	scanned := idx.Scan(1)
	require.Len(t, scanned, 2)
}

func TestOrderedIndexRemoveByPointerIdentity(t *testing.T) {
	idx := NewOrderedIndex[uint32, int16, ColRow](colOrderLess)
	a := &ColRow{InternalCol: 5, Name: "A"}
	b := &ColRow{InternalCol: 5, Name: "B"}
	idx.Add(1, a.InternalCol, a)
	idx.Add(1, b.InternalCol, b)

	idx.Remove(1, a)

	scanned := idx.Scan(1)
	require.Len(t, scanned, 1)
	assert.Same(t, b, scanned[0])
}

func TestOrderedIndexRemoveLastEntryDropsGroup(t *testing.T) {
	idx := NewOrderedIndex[uint32, int16, ColRow](colOrderLess)
	a := &ColRow{InternalCol: 1}
	idx.Add(7, a.InternalCol, a)
	idx.Remove(7, a)

	assert.Equal(t, 0, idx.Len(7))
}
