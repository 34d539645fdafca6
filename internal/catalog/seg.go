package catalog

import "math/big"

// SegRow mirrors one SYS.SEG$ row: a segment header, identified by its
// physical (file, block) address within a tablespace.
type SegRow struct {
	RowID  RowId
	File   uint32
	Block  uint32
	Ts     uint32
	Spare1 *big.Int
}

// segKey is the (file, block, tablespace) unique key.
type segKey struct {
	File  uint32
	Block uint32
	Ts    uint32
}

// SegTable is the catalog table for SYS.SEG$, indexed by rowid and by
// (file, block, tablespace) (unique hash — §3).
type SegTable struct {
	Store[SegRow]
	byAddr UniqueIndex[segKey, SegRow]
}

// NewSegTable creates an empty SEG$ table.
func NewSegTable() *SegTable {
	return &SegTable{
		Store:  NewStore[SegRow](),
		byAddr: NewUniqueIndex[segKey, SegRow](),
	}
}

// Add inserts rec into every index.
func (t *SegTable) Add(rec *SegRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byAddr.Add(segKey{File: rec.File, Block: rec.Block, Ts: rec.Ts}, rec)
}

// Remove deletes rec from every index.
func (t *SegTable) Remove(rec *SegRow) {
	t.removePrimary(rec.RowID)
	t.byAddr.Remove(segKey{File: rec.File, Block: rec.Block, Ts: rec.Ts}, rec)
}

// FindByAddr is the secondary hash lookup by (file, block, tablespace).
func (t *SegTable) FindByAddr(file, block, ts uint32) (*SegRow, bool) {
	return t.byAddr.Find(segKey{File: file, Block: block, Ts: ts})
}

// MarkTouched records rec as changed since the last commit.
func (t *SegTable) MarkTouched(rec *SegRow) {
	t.markTouched(rec.RowID, rec)
}
