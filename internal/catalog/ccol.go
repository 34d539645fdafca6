package catalog

import "math/big"

// CColRow mirrors one SYS.CCOL$ row: a constraint-to-column link.
type CColRow struct {
	RowID       RowId
	ConID       uint32
	InternalCol int16
	ObjID       uint32
	Spare1      *big.Int
}

// cColKey is the (internal-col, con-id) ordering key within an obj-id
// group — invariant I2 allows several CCOL$ rows to share (obj-id,
// internal-col) under different constraints, hence the third component.
type cColKey struct {
	InternalCol int16
	ConID       uint32
}

func cColKeyLess(a, b cColKey) bool {
	if a.InternalCol != b.InternalCol {
		return a.InternalCol < b.InternalCol
	}
	return a.ConID < b.ConID
}

// CColTable is the catalog table for SYS.CCOL$, indexed by rowid and by
// (obj-id, internal-col, con-id) ordered (§3).
type CColTable struct {
	Store[CColRow]
	byObj OrderedIndex[uint32, cColKey, CColRow]
}

// NewCColTable creates an empty CCOL$ table.
func NewCColTable() *CColTable {
	return &CColTable{
		Store: NewStore[CColRow](),
		byObj: NewOrderedIndex[uint32, cColKey, CColRow](cColKeyLess),
	}
}

// Add inserts rec into every index.
func (t *CColTable) Add(rec *CColRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byObj.Add(rec.ObjID, cColKey{InternalCol: rec.InternalCol, ConID: rec.ConID}, rec)
}

// Remove deletes rec from every index.
func (t *CColTable) Remove(rec *CColRow) {
	t.removePrimary(rec.RowID)
	t.byObj.Remove(rec.ObjID, rec)
}

// ScanByObjID enumerates every CCOL$ row for objID in ordinal order.
func (t *CColTable) ScanByObjID(objID uint32) []*CColRow {
	return t.byObj.Scan(objID)
}

// MarkTouched records rec as changed since the last commit.
func (t *CColTable) MarkTouched(rec *CColRow) {
	t.markTouched(rec.RowID, rec)
}
