package catalog

// LobRow mirrors one SYS.LOB$ row: a LOB column's storage descriptor,
// linking a table column to its out-of-line LOB segment object.
type LobRow struct {
	RowID       RowId
	ObjID       uint32
	ColID       int16
	IntCol      int16
	LObj        uint32 // the LOB segment's own obj-id
	Ts          uint32
}

// LobTable is the catalog table for SYS.LOB$, indexed by rowid and by
// l-obj (unique hash — §3): LOBFRAG$ and LOBCOMPPART$ rows resolve back
// to their owning column through this index.
type LobTable struct {
	Store[LobRow]
	byLObj UniqueIndex[uint32, LobRow]
}

// NewLobTable creates an empty LOB$ table.
func NewLobTable() *LobTable {
	return &LobTable{Store: NewStore[LobRow](), byLObj: NewUniqueIndex[uint32, LobRow]()}
}

// Add inserts rec into every index.
func (t *LobTable) Add(rec *LobRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byLObj.Add(rec.LObj, rec)
}

// Remove deletes rec from every index.
func (t *LobTable) Remove(rec *LobRow) {
	t.removePrimary(rec.RowID)
	t.byLObj.Remove(rec.LObj, rec)
}

// FindByLObj is the secondary hash lookup by l-obj.
func (t *LobTable) FindByLObj(lObj uint32) (*LobRow, bool) {
	return t.byLObj.Find(lObj)
}

// MarkTouched records rec as changed since the last commit.
func (t *LobTable) MarkTouched(rec *LobRow) {
	t.markTouched(rec.RowID, rec)
}
