package catalog

// CDefRow mirrors one SYS.CDEF$ row: a constraint definition.
type CDefRow struct {
	RowID RowId
	ConID uint32
	ObjID uint32
	Type  uint16
}

func cDefConLess(a, b uint32) bool { return a < b }

// CDefTable is the catalog table for SYS.CDEF$, indexed by rowid, by
// con-id (unique hash — §3), and by (obj-id, con-id) ordered, since
// DS's supplemental-log computation needs every constraint on an
// object in a stable order.
type CDefTable struct {
	Store[CDefRow]
	byConID UniqueIndex[uint32, CDefRow]
	byObj   OrderedIndex[uint32, uint32, CDefRow]
}

// NewCDefTable creates an empty CDEF$ table.
func NewCDefTable() *CDefTable {
	return &CDefTable{
		Store:   NewStore[CDefRow](),
		byConID: NewUniqueIndex[uint32, CDefRow](),
		byObj:   NewOrderedIndex[uint32, uint32, CDefRow](cDefConLess),
	}
}

// Add inserts rec into every index.
func (t *CDefTable) Add(rec *CDefRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byConID.Add(rec.ConID, rec)
	t.byObj.Add(rec.ObjID, rec.ConID, rec)
}

// Remove deletes rec from every index.
func (t *CDefTable) Remove(rec *CDefRow) {
	t.removePrimary(rec.RowID)
	t.byConID.Remove(rec.ConID, rec)
	t.byObj.Remove(rec.ObjID, rec)
}

// FindByConID is the secondary hash lookup by con-id.
func (t *CDefTable) FindByConID(conID uint32) (*CDefRow, bool) {
	return t.byConID.Find(conID)
}

// ScanByObjID enumerates every constraint on objID in ascending con-id order.
func (t *CDefTable) ScanByObjID(objID uint32) []*CDefRow {
	return t.byObj.Scan(objID)
}

// MarkTouched records rec as changed since the last commit.
func (t *CDefTable) MarkTouched(rec *CDefRow) {
	t.markTouched(rec.RowID, rec)
}
