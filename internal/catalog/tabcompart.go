package catalog

// TabComPartRow mirrors one SYS.TABCOMPART$ row: a composite-partitioned
// table's top-level partition (the parent of its subpartitions).
type TabComPartRow struct {
	RowID     RowId
	ObjID     uint32
	DataObjID uint32
	Bo        uint32
}

func tabComPartObjLess(a, b uint32) bool { return a < b }

// TabComPartTable is the catalog table for SYS.TABCOMPART$, indexed by
// rowid and by (bo, obj-id) ordered (§3).
type TabComPartTable struct {
	Store[TabComPartRow]
	byBo OrderedIndex[uint32, uint32, TabComPartRow]
}

// NewTabComPartTable creates an empty TABCOMPART$ table.
func NewTabComPartTable() *TabComPartTable {
	return &TabComPartTable{
		Store: NewStore[TabComPartRow](),
		byBo:  NewOrderedIndex[uint32, uint32, TabComPartRow](tabComPartObjLess),
	}
}

// Add inserts rec into every index.
func (t *TabComPartTable) Add(rec *TabComPartRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byBo.Add(rec.Bo, rec.ObjID, rec)
}

// Remove deletes rec from every index.
func (t *TabComPartTable) Remove(rec *TabComPartRow) {
	t.removePrimary(rec.RowID)
	t.byBo.Remove(rec.Bo, rec)
}

// ScanByBo enumerates every composite partition of base-object bo in
// ascending obj-id order.
func (t *TabComPartTable) ScanByBo(bo uint32) []*TabComPartRow {
	return t.byBo.Scan(bo)
}

// MarkTouched records rec as changed since the last commit.
func (t *TabComPartTable) MarkTouched(rec *TabComPartRow) {
	t.markTouched(rec.RowID, rec)
}
