package catalog

import "math/big"

// ColRow mirrors one SYS.COL$ row: one column of one object.
type ColRow struct {
	RowID       RowId
	ObjID       uint32
	ColPos      int16 // COL# — logical column position, can be negative for hidden/virtual columns
	SegCol      int16 // SEGCOL# — physical segment column position
	InternalCol int16 // INTCOL# — internal column ordinal, the join key DS range-scans by
	Name        string
	TypeCode    uint16
	Length      uint64
	Precision   int64
	Scale       int64
	CharsetForm uint64
	CharsetID   uint64
	Nullable    int64 // NULL$: nonzero means nullable
	Property    *big.Int
}

func colOrderLess(a, b int16) bool { return a < b }

// ColTable is the catalog table for SYS.COL$, indexed by rowid and by
// (obj-id, internal-col) in ordinal order (an ordered multimap — §3),
// which is how DS's build step enumerates a table's columns in order.
type ColTable struct {
	Store[ColRow]
	byObjInternal OrderedIndex[uint32, int16, ColRow]
}

// NewColTable creates an empty COL$ table.
func NewColTable() *ColTable {
	return &ColTable{
		Store:         NewStore[ColRow](),
		byObjInternal: NewOrderedIndex[uint32, int16, ColRow](colOrderLess),
	}
}

// Add inserts rec into every index.
func (t *ColTable) Add(rec *ColRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byObjInternal.Add(rec.ObjID, rec.InternalCol, rec)
}

// Remove deletes rec from every index.
func (t *ColTable) Remove(rec *ColRow) {
	t.removePrimary(rec.RowID)
	t.byObjInternal.Remove(rec.ObjID, rec)
}

// ScanByObjID enumerates every column of objID in ascending internal-col
// order — the range scan DS's build step relies on.
func (t *ColTable) ScanByObjID(objID uint32) []*ColRow {
	return t.byObjInternal.Scan(objID)
}

// MarkTouched records rec as changed since the last commit.
func (t *ColTable) MarkTouched(rec *ColRow) {
	t.markTouched(rec.RowID, rec)
}
