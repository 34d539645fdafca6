package catalog

import "math/big"

// TabRow mirrors one SYS.TAB$ row: a table's own metadata, distinct
// from its object-level name/owner which lives in OBJ$.
type TabRow struct {
	RowID     RowId
	ObjID     uint32
	DataObjID uint32
	Ts        uint32
	CluCols   int16
	Flags     uint32
	Property  *big.Int
}

// TabTable is the catalog table for SYS.TAB$, indexed by rowid and by
// obj-id (unique hash — §3).
type TabTable struct {
	Store[TabRow]
	byObjID UniqueIndex[uint32, TabRow]
}

// NewTabTable creates an empty TAB$ table.
func NewTabTable() *TabTable {
	return &TabTable{Store: NewStore[TabRow](), byObjID: NewUniqueIndex[uint32, TabRow]()}
}

// Add inserts rec into every index.
func (t *TabTable) Add(rec *TabRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byObjID.Add(rec.ObjID, rec)
}

// Remove deletes rec from every index.
func (t *TabTable) Remove(rec *TabRow) {
	t.removePrimary(rec.RowID)
	t.byObjID.Remove(rec.ObjID, rec)
}

// FindByObjID is the secondary hash lookup by obj-id.
func (t *TabTable) FindByObjID(objID uint32) (*TabRow, bool) {
	return t.byObjID.Find(objID)
}

// MarkTouched records rec as changed since the last commit.
func (t *TabTable) MarkTouched(rec *TabRow) {
	t.markTouched(rec.RowID, rec)
}
