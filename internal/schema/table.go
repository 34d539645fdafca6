// Package schema holds the Derived Schema (DS) — a read-only, rebuilt-at-
// commit view of the Catalog Row Store — and the Commit Orchestrator (CO)
// that keeps it current. DS is a pure function of CRS plus the configured
// user filter list plus a fixed set of global replicator options; nothing
// here is valid input, only an always-reconstructible projection of it.
package schema

import "math/big"

// Column is one resolved column of a Table: the merge of its COL$ row,
// any ECOL$ guard-column linkage, and any LOB$ layout attached to it.
type Column struct {
	Name        string
	Position    int16
	TypeCode    uint16
	Length      uint64
	Precision   int64
	Scale       int64
	CharsetForm uint64
	CharsetID   uint64
	Nullable    bool
	Property    *big.Int
	GuardID     *int16
	Lob         *LobLayout
}

// LobLayout describes a LOB column's out-of-line storage, attached from
// LOB$/LOBFRAG$/LOBCOMPPART$ during CO's build step.
type LobLayout struct {
	LObj         uint32
	Tablespace   string
	Fragments    []uint32 // frag-obj ids, ascending
	CompPart     []uint32 // part-obj ids, ascending
}

// SupplementalLogOptions records which columns carry supplemental
// logging, combining database-wide primary/all settings with per-table
// constraint records (CDEF$/CCOL$ — §4.3 step 4).
type SupplementalLogOptions struct {
	Primary bool
	All     bool
	Columns map[int16]bool // internal-col -> logged
}

// Table is one fully-resolved DS entry: everything downstream consumers
// need to decode a row-level redo operation against a user table into a
// schema-aware logical change record.
type Table struct {
	ObjID             uint32
	Owner             string
	Name              string
	Columns           []Column
	Partitions        map[uint32]uint32 // child-obj-id -> parent (base) obj-id
	Subpartitions     map[uint32]uint32 // child-obj-id -> parent (tabcompart) obj-id
	PrimaryKeyColumns map[int16]bool
	Supplemental      SupplementalLogOptions
	Tablespace        string
	FilterOrigin      int // index into the configured filter list that materialized this entry
}

// QualifiedName renders "OWNER.NAME" for log and CLI output. The user
// filter list matches owner and table name separately, not this string.
func (t *Table) QualifiedName() string {
	return t.Owner + "." + t.Name
}
