// Package dicterrors defines the typed error kinds the dictionary core can
// raise, following the struct-per-kind pattern the rest of this lineage
// uses for its own domain errors (a dedicated struct with an Error()
// method and a NewXxx constructor, so callers can errors.As into the
// concrete type instead of parsing messages).
package dicterrors

import "fmt"

// DDLTypeMismatch is raised when a catalog column carries a source type
// the coercion rule applying to it doesn't accept (§4.2's coercion table).
type DDLTypeMismatch struct {
	Offset     uint64
	TableName  string // e.g. "SYS.COL$"
	ColumnName string
	SourceType int
}

func (e *DDLTypeMismatch) Error() string {
	return fmt.Sprintf("ddl: type mismatch for %s.%s: source type %d, offset %d",
		e.TableName, e.ColumnName, e.SourceType, e.Offset)
}

// NewDDLTypeMismatch constructs a DDLTypeMismatch.
func NewDDLTypeMismatch(offset uint64, tableName, columnName string, sourceType int) *DDLTypeMismatch {
	return &DDLTypeMismatch{Offset: offset, TableName: tableName, ColumnName: columnName, SourceType: sourceType}
}

// DDLValueRejected is raised when an after-image's bytes are syntactically
// invalid for the coercion applied to them (e.g. a leading '-' for an
// unsigned coercion, or an empty value where one is required).
type DDLValueRejected struct {
	Offset     uint64
	TableName  string
	ColumnName string
	Value      string
	Reason     string
}

func (e *DDLValueRejected) Error() string {
	return fmt.Sprintf("ddl: value rejected for %s.%s: %q (%s), offset %d",
		e.TableName, e.ColumnName, e.Value, e.Reason, e.Offset)
}

// NewDDLValueRejected constructs a DDLValueRejected.
func NewDDLValueRejected(offset uint64, tableName, columnName, value, reason string) *DDLValueRejected {
	return &DDLValueRejected{Offset: offset, TableName: tableName, ColumnName: columnName, Value: value, Reason: reason}
}

// DuplicateCatalogRow is raised by an INSERT against a rowid that already
// has a live record, outside adaptive-schema mode.
type DuplicateCatalogRow struct {
	Offset    uint64
	TableName string
	RowID     string
}

func (e *DuplicateCatalogRow) Error() string {
	return fmt.Sprintf("ddl: duplicate %s row (rowid %s) for insert, offset %d", e.TableName, e.RowID, e.Offset)
}

// NewDuplicateCatalogRow constructs a DuplicateCatalogRow.
func NewDuplicateCatalogRow(offset uint64, tableName, rowID string) *DuplicateCatalogRow {
	return &DuplicateCatalogRow{Offset: offset, TableName: tableName, RowID: rowID}
}

// MissingCatalogRow is raised by an UPDATE or DELETE against a rowid with
// no live record, outside adaptive-schema mode (§11's strictness fix:
// in the original this case only ever logged and returned; here, in
// non-adaptive mode, it is fatal).
type MissingCatalogRow struct {
	Offset    uint64
	TableName string
	RowID     string
	Operation string // "update" or "delete"
}

func (e *MissingCatalogRow) Error() string {
	return fmt.Sprintf("ddl: missing %s row (rowid %s) for %s, offset %d", e.TableName, e.RowID, e.Operation, e.Offset)
}

// NewMissingCatalogRow constructs a MissingCatalogRow.
func NewMissingCatalogRow(offset uint64, tableName, rowID, operation string) *MissingCatalogRow {
	return &MissingCatalogRow{Offset: offset, TableName: tableName, RowID: rowID, Operation: operation}
}

// CheckpointSchemaCorrupt is raised when a checkpoint file fails structural
// validation at start-up.
type CheckpointSchemaCorrupt struct {
	Path   string
	Reason string
}

func (e *CheckpointSchemaCorrupt) Error() string {
	return fmt.Sprintf("checkpoint schema corrupt (%s): %s", e.Path, e.Reason)
}

// NewCheckpointSchemaCorrupt constructs a CheckpointSchemaCorrupt.
func NewCheckpointSchemaCorrupt(path, reason string) *CheckpointSchemaCorrupt {
	return &CheckpointSchemaCorrupt{Path: path, Reason: reason}
}
