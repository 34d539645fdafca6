package catalog

// LobCompPartRow mirrors one SYS.LOBCOMPPART$ row: a partition of a
// partitioned LOB segment, distinct from LOBFRAG$'s fragments — the
// original keeps sysLobCompPartMapRowId as its own map keyed by l-obj.
type LobCompPartRow struct {
	RowID   RowId
	PartObj uint32
	LObj    uint32
}

func lobCompPartObjLess(a, b uint32) bool { return a < b }

// LobCompPartTable is the catalog table for SYS.LOBCOMPPART$, indexed by
// rowid and by (l-obj, part-obj) ordered (§3).
type LobCompPartTable struct {
	Store[LobCompPartRow]
	byLObj OrderedIndex[uint32, uint32, LobCompPartRow]
}

// NewLobCompPartTable creates an empty LOBCOMPPART$ table.
func NewLobCompPartTable() *LobCompPartTable {
	return &LobCompPartTable{
		Store:  NewStore[LobCompPartRow](),
		byLObj: NewOrderedIndex[uint32, uint32, LobCompPartRow](lobCompPartObjLess),
	}
}

// Add inserts rec into every index.
func (t *LobCompPartTable) Add(rec *LobCompPartRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byLObj.Add(rec.LObj, rec.PartObj, rec)
}

// Remove deletes rec from every index.
func (t *LobCompPartTable) Remove(rec *LobCompPartRow) {
	t.removePrimary(rec.RowID)
	t.byLObj.Remove(rec.LObj, rec)
}

// ScanByLObj enumerates every partition of l-obj lObj in ascending
// part-obj order.
func (t *LobCompPartTable) ScanByLObj(lObj uint32) []*LobCompPartRow {
	return t.byLObj.Scan(lObj)
}

// MarkTouched records rec as changed since the last commit.
func (t *LobCompPartTable) MarkTouched(rec *LobCompPartRow) {
	t.markTouched(rec.RowID, rec)
}
