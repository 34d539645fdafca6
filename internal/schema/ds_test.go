package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSIterateTablesOrdersByObjID(t *testing.T) {
	ds := New()
	ds.mu.Lock()
	ds.install(&Table{ObjID: 300, Owner: "A", Name: "C"})
	ds.install(&Table{ObjID: 100, Owner: "A", Name: "A"})
	ds.install(&Table{ObjID: 200, Owner: "A", Name: "B"})
	ds.mu.Unlock()

	var seen []uint32
	for tbl := range ds.IterateTables() {
		seen = append(seen, tbl.ObjID)
	}
	assert.Equal(t, []uint32{100, 200, 300}, seen)
}

func TestDSIterateTablesStopsOnFalse(t *testing.T) {
	ds := New()
	ds.mu.Lock()
	ds.install(&Table{ObjID: 1})
	ds.install(&Table{ObjID: 2})
	ds.install(&Table{ObjID: 3})
	ds.mu.Unlock()

	var seen []uint32
	for tbl := range ds.IterateTables() {
		seen = append(seen, tbl.ObjID)
		if tbl.ObjID == 2 {
			break
		}
	}
	assert.Equal(t, []uint32{1, 2}, seen)
}

func TestDSDropAndLen(t *testing.T) {
	ds := New()
	ds.mu.Lock()
	ds.install(&Table{ObjID: 1})
	dropped := ds.drop(1)
	stillDropped := ds.drop(1)
	ds.mu.Unlock()

	require.True(t, dropped)
	assert.Equal(t, 0, ds.Len())
	assert.False(t, stillDropped, "dropping an already-absent entry reports false")
}

func TestDSLookupTableMissing(t *testing.T) {
	ds := New()
	_, ok := ds.LookupTable(999)
	assert.False(t, ok)
}
