package catalog

// DeferredStgRow mirrors one SYS.DEFERRED_STG$ row: per-object storage
// flags. The Commit Orchestrator does not read this table, and no DS Table
// field carries these flags.
type DeferredStgRow struct {
	RowID    RowId
	ObjID    uint32
	FlagsStg uint64
}

// DeferredStgTable is the catalog table for SYS.DEFERRED_STG$, indexed
// by rowid and by obj-id (unique hash — §3).
type DeferredStgTable struct {
	Store[DeferredStgRow]
	byObjID UniqueIndex[uint32, DeferredStgRow]
}

// NewDeferredStgTable creates an empty DEFERRED_STG$ table.
func NewDeferredStgTable() *DeferredStgTable {
	return &DeferredStgTable{
		Store:   NewStore[DeferredStgRow](),
		byObjID: NewUniqueIndex[uint32, DeferredStgRow](),
	}
}

// Add inserts rec into every index.
func (t *DeferredStgTable) Add(rec *DeferredStgRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byObjID.Add(rec.ObjID, rec)
}

// Remove deletes rec from every index.
func (t *DeferredStgTable) Remove(rec *DeferredStgRow) {
	t.removePrimary(rec.RowID)
	t.byObjID.Remove(rec.ObjID, rec)
}

// FindByObjID is the secondary hash lookup by obj-id.
func (t *DeferredStgTable) FindByObjID(objID uint32) (*DeferredStgRow, bool) {
	return t.byObjID.Find(objID)
}

// MarkTouched records rec as changed since the last commit.
func (t *DeferredStgTable) MarkTouched(rec *DeferredStgRow) {
	t.markTouched(rec.RowID, rec)
}
