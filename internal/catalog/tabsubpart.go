package catalog

// TabSubPartRow mirrors one SYS.TABSUBPART$ row: a subpartition of a
// composite-partitioned table.
type TabSubPartRow struct {
	RowID     RowId
	ObjID     uint32
	DataObjID uint32
	PObj      uint32 // the owning TABCOMPART$ row's obj-id
}

func tabSubPartObjLess(a, b uint32) bool { return a < b }

// TabSubPartTable is the catalog table for SYS.TABSUBPART$, indexed by
// rowid and by (p-obj, obj-id) ordered (§3).
type TabSubPartTable struct {
	Store[TabSubPartRow]
	byPObj OrderedIndex[uint32, uint32, TabSubPartRow]
}

// NewTabSubPartTable creates an empty TABSUBPART$ table.
func NewTabSubPartTable() *TabSubPartTable {
	return &TabSubPartTable{
		Store:  NewStore[TabSubPartRow](),
		byPObj: NewOrderedIndex[uint32, uint32, TabSubPartRow](tabSubPartObjLess),
	}
}

// Add inserts rec into every index.
func (t *TabSubPartTable) Add(rec *TabSubPartRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byPObj.Add(rec.PObj, rec.ObjID, rec)
}

// Remove deletes rec from every index.
func (t *TabSubPartTable) Remove(rec *TabSubPartRow) {
	t.removePrimary(rec.RowID)
	t.byPObj.Remove(rec.PObj, rec)
}

// ScanByPObj enumerates every subpartition of parent object pObj in
// ascending obj-id order.
func (t *TabSubPartTable) ScanByPObj(pObj uint32) []*TabSubPartRow {
	return t.byPObj.Scan(pObj)
}

// MarkTouched records rec as changed since the last commit.
func (t *TabSubPartTable) MarkTouched(rec *TabSubPartRow) {
	t.markTouched(rec.RowID, rec)
}
