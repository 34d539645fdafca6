package catalog

// TabPartRow mirrors one SYS.TABPART$ row: a table partition.
type TabPartRow struct {
	RowID     RowId
	ObjID     uint32
	DataObjID uint32
	Bo        uint32 // base object: the partitioned table's obj-id
}

func tabPartObjLess(a, b uint32) bool { return a < b }

// TabPartTable is the catalog table for SYS.TABPART$, indexed by rowid
// and by (bo, obj-id) ordered (§3) — DS's build step enumerates a
// table's partitions grouped under its base object.
type TabPartTable struct {
	Store[TabPartRow]
	byBo OrderedIndex[uint32, uint32, TabPartRow]
}

// NewTabPartTable creates an empty TABPART$ table.
func NewTabPartTable() *TabPartTable {
	return &TabPartTable{
		Store: NewStore[TabPartRow](),
		byBo:  NewOrderedIndex[uint32, uint32, TabPartRow](tabPartObjLess),
	}
}

// Add inserts rec into every index.
func (t *TabPartTable) Add(rec *TabPartRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byBo.Add(rec.Bo, rec.ObjID, rec)
}

// Remove deletes rec from every index.
func (t *TabPartTable) Remove(rec *TabPartRow) {
	t.removePrimary(rec.RowID)
	t.byBo.Remove(rec.Bo, rec)
}

// ScanByBo enumerates every partition of base-object bo in ascending obj-id order.
func (t *TabPartTable) ScanByBo(bo uint32) []*TabPartRow {
	return t.byBo.Scan(bo)
}

// MarkTouched records rec as changed since the last commit.
func (t *TabPartTable) MarkTouched(rec *TabPartRow) {
	t.markTouched(rec.RowID, rec)
}
