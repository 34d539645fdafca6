// Package dictdiff is the System Transaction Interpreter: it consumes
// row-level redo operations targeting the sixteen catalog tables and
// mutates an internal/catalog.Registry while preserving cross-index
// consistency and replay idempotence.
package dictdiff

// ValueVector is the source-column projection the upstream record
// disassembler hands to one of OnInsert/OnUpdate/OnDelete: a sparse
// mapping from source column name (the authoritative join key — §4.4:
// dispatch tolerates column reordering/addition across Oracle versions
// because it matches by name, not ordinal position) to the column's
// Oracle source type and an optional (before-image, after-image) pair
// of raw bytes. Presence is tracked by IsSet; either image may
// independently be absent even when IsSet is true (a column can be
// present-but-null), and a column can be IsSet with neither image
// present at all (present-but-untouched).
type ValueVector struct {
	before  map[string][]byte
	after   map[string][]byte
	srcType map[string]SourceType
	set     map[string]bool
}

// NewValueVector creates an empty ValueVector.
func NewValueVector() *ValueVector {
	return &ValueVector{
		before:  make(map[string][]byte),
		after:   make(map[string][]byte),
		srcType: make(map[string]SourceType),
		set:     make(map[string]bool),
	}
}

// SetColumn records that column is present in this operation, carrying
// srcType (the Oracle type code the disassembler read off the table's
// column definition — SystemTransaction.cpp:152) and the given
// before/after images (either may be nil).
func (v *ValueVector) SetColumn(column string, srcType SourceType, before, after []byte) {
	v.set[column] = true
	v.srcType[column] = srcType
	if before != nil {
		v.before[column] = before
	}
	if after != nil {
		v.after[column] = after
	}
}

// IsSet reports whether column was present in the source operation.
func (v *ValueVector) IsSet(column string) bool {
	return v.set[column]
}

// Before returns column's before-image, if any.
func (v *ValueVector) Before(column string) ([]byte, bool) {
	b, ok := v.before[column]
	return b, ok
}

// After returns column's after-image, if any.
func (v *ValueVector) After(column string) ([]byte, bool) {
	a, ok := v.after[column]
	return a, ok
}

// SourceType returns the Oracle type code column was recorded under, if
// the column was ever set.
func (v *ValueVector) SourceType(column string) (SourceType, bool) {
	t, ok := v.srcType[column]
	return t, ok
}

// Columns returns every column name present in this vector, in no
// particular order — dispatch iterates the catalog table's column
// bindings, not this set, so ordering here is irrelevant.
func (v *ValueVector) Columns() []string {
	out := make([]string, 0, len(v.set))
	for col := range v.set {
		out = append(out, col)
	}
	return out
}

// ColumnImage is one column's full projection out of a ValueVector: the
// source type the redo op recorded for it, and its before/after images
// with presence tracked independently of emptiness. A present-but-empty
// after-image resets a coercion to its type default; a wholly absent
// one (neither before nor after present) leaves the field untouched
// (SystemTransaction.cpp:149-169).
type ColumnImage struct {
	SourceType    SourceType
	BeforePresent bool
	Before        []byte
	AfterPresent  bool
	After         []byte
}

// HasAfterValue reports whether img carries a non-empty after-image to
// actually parse, as opposed to resetting the field to its default.
func (img ColumnImage) HasAfterValue() bool {
	return img.AfterPresent && len(img.After) > 0
}

// Column projects column out of v. The second return is false only when
// column was never set at all; a set-but-imageless column (both before
// and after absent) still returns true so callers can tell "touched,
// nothing to apply" apart from "never mentioned by this operation".
func (v *ValueVector) Column(column string) (ColumnImage, bool) {
	if !v.set[column] {
		return ColumnImage{}, false
	}
	before, beforeOK := v.before[column]
	after, afterOK := v.after[column]
	return ColumnImage{
		SourceType:    v.srcType[column],
		BeforePresent: beforeOK,
		Before:        before,
		AfterPresent:  afterOK,
		After:         after,
	}, true
}
