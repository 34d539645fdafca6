package catalog

// EColRow mirrors one SYS.ECOL$ row: an extended-statistics column's
// guard column, used to resolve invisible/virtual columns.
type EColRow struct {
	RowID   RowId
	TabObj  uint32
	ColNum  int16
	GuardID int16
}

// eColKey is the (tab-obj, col-num) unique key.
type eColKey struct {
	TabObj uint32
	ColNum int16
}

// EColTable is the catalog table for SYS.ECOL$, indexed by rowid and by
// (tab-obj, col-num) (unique hash — §3).
type EColTable struct {
	Store[EColRow]
	byTabCol UniqueIndex[eColKey, EColRow]
}

// NewEColTable creates an empty ECOL$ table.
func NewEColTable() *EColTable {
	return &EColTable{
		Store:    NewStore[EColRow](),
		byTabCol: NewUniqueIndex[eColKey, EColRow](),
	}
}

// Add inserts rec into every index.
func (t *EColTable) Add(rec *EColRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byTabCol.Add(eColKey{TabObj: rec.TabObj, ColNum: rec.ColNum}, rec)
}

// Remove deletes rec from every index.
func (t *EColTable) Remove(rec *EColRow) {
	t.removePrimary(rec.RowID)
	t.byTabCol.Remove(eColKey{TabObj: rec.TabObj, ColNum: rec.ColNum}, rec)
}

// FindByTabColNum is the secondary hash lookup by (tab-obj, col-num).
func (t *EColTable) FindByTabColNum(tabObj uint32, colNum int16) (*EColRow, bool) {
	return t.byTabCol.Find(eColKey{TabObj: tabObj, ColNum: colNum})
}

// MarkTouched records rec as changed since the last commit.
func (t *EColTable) MarkTouched(rec *EColRow) {
	t.markTouched(rec.RowID, rec)
}
