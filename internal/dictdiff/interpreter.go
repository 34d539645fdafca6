package dictdiff

import (
	"fmt"

	"github.com/openlogreplicator-go/dictionary/internal/catalog"
	"github.com/openlogreplicator-go/dictionary/internal/tracelog"
)

// Interpreter is the System Transaction Interpreter: the single entry
// point the reassembler calls with row operations against catalog
// tables. It owns no state beyond a reference to the Registry it
// mutates and the run-time flags governing its tolerance of catalog
// drift.
type Interpreter struct {
	registry *catalog.Registry
	adaptive bool
	log      *tracelog.Logger
}

// New creates an Interpreter over registry. adaptive toggles
// adaptive-schema mode (§4.2): on, catalog drift self-heals with a
// logged diagnostic; off, the same drift is fatal.
func New(registry *catalog.Registry, adaptive bool, log *tracelog.Logger) *Interpreter {
	if log == nil {
		log = tracelog.Discard()
	}
	return &Interpreter{registry: registry, adaptive: adaptive, log: log}
}

// Registry returns the Catalog Row Store this interpreter mutates, for
// the Commit Orchestrator to read from once a transaction commits.
func (in *Interpreter) Registry() *catalog.Registry {
	return in.registry
}

// SetAdaptive changes adaptive-schema mode at run time.
func (in *Interpreter) SetAdaptive(adaptive bool) {
	in.adaptive = adaptive
}

// OnInsert applies an INSERT redo operation against table at rowID.
func (in *Interpreter) OnInsert(table CatalogTable, rowID catalog.RowId, values *ValueVector, offset uint64) error {
	switch table {
	case TableUser:
		return applyInsert(userDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableObj:
		return applyInsert(objDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableCol:
		return applyInsert(colDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableCCol:
		return applyInsert(ccolDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableCDef:
		return applyInsert(cdefDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableDeferredStg:
		return applyInsert(deferredStgDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableECol:
		return applyInsert(ecolDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableSeg:
		return applyInsert(segDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableTab:
		return applyInsert(tabDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableTabPart:
		return applyInsert(tabPartDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableTabComPart:
		return applyInsert(tabComPartDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableTabSubPart:
		return applyInsert(tabSubPartDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableTs:
		return applyInsert(tsDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableLob:
		return applyInsert(lobDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableLobFrag:
		return applyInsert(lobFragDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableLobCompPart:
		return applyInsert(lobCompPartDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	default:
		return fmt.Errorf("dictdiff: insert against unknown catalog table enum %d", table)
	}
}

// OnUpdate applies an UPDATE redo operation against table at rowID.
func (in *Interpreter) OnUpdate(table CatalogTable, rowID catalog.RowId, values *ValueVector, offset uint64) error {
	switch table {
	case TableUser:
		return applyUpdate(userDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableObj:
		return applyUpdate(objDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableCol:
		return applyUpdate(colDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableCCol:
		return applyUpdate(ccolDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableCDef:
		return applyUpdate(cdefDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableDeferredStg:
		return applyUpdate(deferredStgDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableECol:
		return applyUpdate(ecolDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableSeg:
		return applyUpdate(segDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableTab:
		return applyUpdate(tabDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableTabPart:
		return applyUpdate(tabPartDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableTabComPart:
		return applyUpdate(tabComPartDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableTabSubPart:
		return applyUpdate(tabSubPartDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableTs:
		return applyUpdate(tsDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableLob:
		return applyUpdate(lobDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableLobFrag:
		return applyUpdate(lobFragDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	case TableLobCompPart:
		return applyUpdate(lobCompPartDesc(in.registry), rowID, values, offset, in.adaptive, in.log)
	default:
		return fmt.Errorf("dictdiff: update against unknown catalog table enum %d", table)
	}
}

// OnDelete applies a DELETE redo operation against table at rowID.
func (in *Interpreter) OnDelete(table CatalogTable, rowID catalog.RowId, offset uint64) error {
	if err := in.dispatchDelete(table, rowID, offset); err != nil {
		return err
	}
	in.registry.MarkDirty()
	return nil
}

func (in *Interpreter) dispatchDelete(table CatalogTable, rowID catalog.RowId, offset uint64) error {
	switch table {
	case TableUser:
		return applyDelete(userDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableObj:
		return applyDelete(objDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableCol:
		return applyDelete(colDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableCCol:
		return applyDelete(ccolDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableCDef:
		return applyDelete(cdefDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableDeferredStg:
		return applyDelete(deferredStgDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableECol:
		return applyDelete(ecolDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableSeg:
		return applyDelete(segDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableTab:
		return applyDelete(tabDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableTabPart:
		return applyDelete(tabPartDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableTabComPart:
		return applyDelete(tabComPartDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableTabSubPart:
		return applyDelete(tabSubPartDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableTs:
		return applyDelete(tsDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableLob:
		return applyDelete(lobDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableLobFrag:
		return applyDelete(lobFragDesc(in.registry), rowID, offset, in.adaptive, in.log)
	case TableLobCompPart:
		return applyDelete(lobCompPartDesc(in.registry), rowID, offset, in.adaptive, in.log)
	default:
		return fmt.Errorf("dictdiff: delete against unknown catalog table enum %d", table)
	}
}
