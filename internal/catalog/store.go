package catalog

import "sort"

// Store is the primary-key layer shared by every catalog table: a
// by-rowid map plus the touched set described in §4.1. Each
// catalog table type embeds a Store and layers its own secondary indexes
// on top (see user.go, obj.go, col.go, ...), since the shape and
// cardinality of secondary keys differs per table.
//
// Store never copies records: add/remove always hand a *T reference in or
// out, and the caller keeps ownership of what remove returns.
type Store[T any] struct {
	byRowID map[RowId]*T
	touched map[RowId]*T
}

// NewStore creates an empty Store.
func NewStore[T any]() Store[T] {
	return Store[T]{
		byRowID: make(map[RowId]*T),
		touched: make(map[RowId]*T),
	}
}

// FindByRowID is the hash lookup every catalog table exposes.
func (s *Store[T]) FindByRowID(rowID RowId) (*T, bool) {
	rec, ok := s.byRowID[rowID]
	return rec, ok
}

// Has reports whether rowID is currently present.
func (s *Store[T]) Has(rowID RowId) bool {
	_, ok := s.byRowID[rowID]
	return ok
}

// insertPrimary adds rec to the by-rowid index. Precondition: no record
// with this rowid already exists. Neither this method nor the per-table Add
// methods check it; the interpreter looks the rowid up and removes any
// existing record before it adds one.
func (s *Store[T]) insertPrimary(rowID RowId, rec *T) {
	s.byRowID[rowID] = rec
}

// removePrimary removes rowID from the by-rowid index and the touched
// set, returning the record that was stored (or nil if absent).
func (s *Store[T]) removePrimary(rowID RowId) *T {
	rec, ok := s.byRowID[rowID]
	if !ok {
		return nil
	}
	delete(s.byRowID, rowID)
	delete(s.touched, rowID)
	return rec
}

// markTouched adds rowID to the touched set. Touched sets are allowed to
// be a superset of "changed since last commit" (false positives are
// tolerated, false negatives are not — invariant I5).
func (s *Store[T]) markTouched(rowID RowId, rec *T) {
	s.touched[rowID] = rec
}

// Touched returns the current touched set. Callers must not mutate the
// returned map.
func (s *Store[T]) Touched() map[RowId]*T {
	return s.touched
}

// IsTouched reports whether rowID has been touched since the last clear.
func (s *Store[T]) IsTouched(rowID RowId) bool {
	_, ok := s.touched[rowID]
	return ok
}

// ClearTouched empties the touched set at commit (§4.3 step 5).
func (s *Store[T]) ClearTouched() {
	s.touched = make(map[RowId]*T)
}

// Len returns the number of live records.
func (s *Store[T]) Len() int {
	return len(s.byRowID)
}

// All returns every live record's rowid, in a stable (sorted) order —
// for deterministic diagnostics and checkpoint serialization only.
func (s *Store[T]) All() []RowId {
	ids := make([]RowId, 0, len(s.byRowID))
	for id := range s.byRowID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return rowIdLess(ids[i], ids[j]) })
	return ids
}
