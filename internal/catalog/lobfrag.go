package catalog

// LobFragRow mirrors one SYS.LOBFRAG$ row: a fragment of a partitioned
// LOB segment. Kept as its own table rather than folded into LOB$ — the
// original tracks sysLobFragMapRowId as a distinct map keyed off a
// different parent (parent-obj, not obj-id), so merging it with LOB$
// or LOBCOMPPART$ would lose that distinction.
type LobFragRow struct {
	RowID     RowId
	FragObj   uint32
	ParentObj uint32
	Ts        uint32
}

func lobFragObjLess(a, b uint32) bool { return a < b }

// LobFragTable is the catalog table for SYS.LOBFRAG$, indexed by rowid
// and by (parent-obj, frag-obj) ordered (§3).
type LobFragTable struct {
	Store[LobFragRow]
	byParent OrderedIndex[uint32, uint32, LobFragRow]
}

// NewLobFragTable creates an empty LOBFRAG$ table.
func NewLobFragTable() *LobFragTable {
	return &LobFragTable{
		Store:    NewStore[LobFragRow](),
		byParent: NewOrderedIndex[uint32, uint32, LobFragRow](lobFragObjLess),
	}
}

// Add inserts rec into every index.
func (t *LobFragTable) Add(rec *LobFragRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byParent.Add(rec.ParentObj, rec.FragObj, rec)
}

// Remove deletes rec from every index.
func (t *LobFragTable) Remove(rec *LobFragRow) {
	t.removePrimary(rec.RowID)
	t.byParent.Remove(rec.ParentObj, rec)
}

// ScanByParentObj enumerates every fragment of parentObj in ascending
// frag-obj order.
func (t *LobFragTable) ScanByParentObj(parentObj uint32) []*LobFragRow {
	return t.byParent.Scan(parentObj)
}

// MarkTouched records rec as changed since the last commit.
func (t *LobFragTable) MarkTouched(rec *LobFragRow) {
	t.markTouched(rec.RowID, rec)
}
