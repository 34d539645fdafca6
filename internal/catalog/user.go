package catalog

import "math/big"

// UserRow mirrors one SYS.USER$ row: a database user/schema owner.
type UserRow struct {
	RowID  RowId
	UserID uint32
	Name   string
	Spare1 *big.Int // property bitset
}

// UserTable is the catalog table for SYS.USER$, indexed by rowid and by
// user-id (a unique hash index — §3).
type UserTable struct {
	Store[UserRow]
	byUserID UniqueIndex[uint32, UserRow]
}

// NewUserTable creates an empty USER$ table.
func NewUserTable() *UserTable {
	return &UserTable{
		Store:    NewStore[UserRow](),
		byUserID: NewUniqueIndex[uint32, UserRow](),
	}
}

// Add inserts rec into the by-rowid index and the by-user-id index.
// Precondition: no record with rec.RowID currently exists (§4.1).
func (t *UserTable) Add(rec *UserRow) {
	t.insertPrimary(rec.RowID, rec)
	t.byUserID.Add(rec.UserID, rec)
}

// Remove deletes rec from every index. Ownership of rec passes to the
// caller; Remove does not free or reuse it.
func (t *UserTable) Remove(rec *UserRow) {
	t.removePrimary(rec.RowID)
	t.byUserID.Remove(rec.UserID, rec)
}

// FindByUserID is the secondary hash lookup by user-id.
func (t *UserTable) FindByUserID(userID uint32) (*UserRow, bool) {
	return t.byUserID.Find(userID)
}

// MarkTouched records rec as changed since the last commit.
func (t *UserTable) MarkTouched(rec *UserRow) {
	t.markTouched(rec.RowID, rec)
}
