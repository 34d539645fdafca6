package catalog

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabTableAddFindRemove(t *testing.T) {
	tab := NewTabTable()
	rec := &TabRow{
		RowID:     NewRowId(1, 1, 1),
		ObjID:     100,
		DataObjID: 100,
		Ts:        0,
		Property:  big.NewInt(0),
	}

	tab.Add(rec)
	found, ok := tab.FindByObjID(100)
	require.True(t, ok)
	assert.Same(t, rec, found)

	tab.Remove(rec)
	_, ok = tab.FindByObjID(100)
	assert.False(t, ok)
	assert.False(t, tab.Has(rec.RowID))
}

func TestTabPartTableScanByBoOrdersByObjID(t *testing.T) {
	tabPart := NewTabPartTable()
	parts := []*TabPartRow{
		{RowID: NewRowId(2, 1, 1), ObjID: 300, Bo: 100},
		{RowID: NewRowId(2, 1, 2), ObjID: 200, Bo: 100},
		{RowID: NewRowId(2, 1, 3), ObjID: 400, Bo: 999}, // different base object
	}
	for _, p := range parts {
		tabPart.Add(p)
	}

	scanned := tabPart.ScanByBo(100)
	require.Len(t, scanned, 2)
	assert.Equal(t, uint32(200), scanned[0].ObjID)
	assert.Equal(t, uint32(300), scanned[1].ObjID)

	other := tabPart.ScanByBo(999)
	require.Len(t, other, 1)
	assert.Equal(t, uint32(400), other[0].ObjID)
}

func TestEColTableFindByTabColNum(t *testing.T) {
	ecol := NewEColTable()
	rec := &EColRow{RowID: NewRowId(3, 1, 1), TabObj: 50, ColNum: 2, GuardID: 7}
	ecol.Add(rec)

	found, ok := ecol.FindByTabColNum(50, 2)
	require.True(t, ok)
	assert.Equal(t, int16(7), found.GuardID)

	_, ok = ecol.FindByTabColNum(50, 3)
	assert.False(t, ok)
}
