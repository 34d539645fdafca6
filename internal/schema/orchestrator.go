package schema

import (
	"math/big"
	"sort"

	"github.com/openlogreplicator-go/dictionary/internal/catalog"
	"github.com/openlogreplicator-go/dictionary/internal/tracelog"
)

// colPropertyDropped is the COL$.PROPERTY bit Oracle sets on a dropped
// (but not yet purged) column; CO's build step skips such columns when
// assembling a Table's column list (§4.3 step 4: "skipping dropped/
// invisible columns per the property bitset").
var colPropertyDropped = big.NewInt(1 << 14)

// colPropertyInvisible is the bit Oracle sets on an invisible column.
var colPropertyInvisible = big.NewInt(1 << 34)

// Options are the global replicator settings CO folds into every built
// Table's SupplementalLogOptions, independent of any one filter entry.
type Options struct {
	SupplementalLogPrimary bool
	SupplementalLogAll     bool
}

// Orchestrator is the Commit Orchestrator: it rebuilds DS from CRS at
// each source-transaction commit that touched any catalog table.
type Orchestrator struct {
	ds       *DS
	registry *catalog.Registry
	filters  FilterList
	options  Options
	log      *tracelog.Logger
}

// NewOrchestrator creates a CO over ds and registry, with a fixed filter
// list and global options.
func NewOrchestrator(ds *DS, registry *catalog.Registry, filters FilterList, options Options, log *tracelog.Logger) *Orchestrator {
	if log == nil {
		log = tracelog.Discard()
	}
	return &Orchestrator{ds: ds, registry: registry, filters: filters, options: options, log: log}
}

// Commit runs one drop_unused+build cycle at the given commit SCN
// (§4.3). A no-op if CRS's aggregate touched flag is clear.
func (co *Orchestrator) Commit(scn uint64) error {
	if !co.registry.Dirty() {
		return nil
	}

	co.ds.mu.Lock()
	defer co.ds.mu.Unlock()

	co.ds.scn = scn
	co.dropUnusedLocked()
	co.buildLocked()

	co.registry.ClearDirty()
	return nil
}

// dropUnusedLocked drops every DS entry whose preconditions (I3) no
// longer hold or whose backing records were touched this transaction.
// Caller must hold ds.mu for writing.
func (co *Orchestrator) dropUnusedLocked() {
	for objID, t := range co.ds.tables {
		if co.shouldDrop(objID) {
			co.log.Info(tracelog.Commit, "dropping stale metadata", "object", t.QualifiedName())
			co.ds.drop(objID)
		}
	}
}

func (co *Orchestrator) shouldDrop(objID uint32) bool {
	objRow, ok := co.registry.Obj.FindByObjID(objID)
	if !ok {
		return true
	}
	if co.registry.Obj.IsTouched(objRow.RowID) {
		return true
	}
	tabRow, ok := co.registry.Tab.FindByObjID(objID)
	if !ok {
		return true
	}
	if co.registry.Tab.IsTouched(tabRow.RowID) {
		return true
	}
	cols := co.registry.Col.ScanByObjID(objID)
	if len(cols) == 0 {
		return true
	}
	for _, c := range cols {
		if co.registry.Col.IsTouched(c.RowID) {
			return true
		}
	}
	return false
}

// buildLocked walks the configured filter list in order and installs a
// freshly-assembled Table for every object it accepts. Caller must hold
// ds.mu for writing.
func (co *Orchestrator) buildLocked() {
	built := make(map[uint32]*Table)

	for filterIdx, f := range co.filters {
		for _, objRow := range co.allObjRows() {
			userRow, ok := co.registry.User.FindByUserID(objRow.Owner)
			if !ok {
				continue
			}
			if !likeMatch(f.OwnerPattern, userRow.Name) || !likeMatch(f.TablePattern, objRow.Name) {
				continue
			}
			t := co.assembleTable(objRow, f, filterIdx)
			if t == nil {
				continue
			}
			built[objRow.ObjID] = t
		}
	}

	for _, t := range built {
		co.ds.install(t)
	}
}

func (co *Orchestrator) allObjRows() []*catalog.ObjRow {
	ids := co.registry.Obj.All()
	out := make([]*catalog.ObjRow, 0, len(ids))
	for _, id := range ids {
		if rec, ok := co.registry.Obj.FindByRowID(id); ok {
			out = append(out, rec)
		}
	}
	return out
}

// assembleTable builds a complete Table for objRow under filter f, or
// returns nil if CRS doesn't yet satisfy DS's existence precondition
// (I3: needs OBJ$ + TAB$ + at least one COL$).
func (co *Orchestrator) assembleTable(objRow *catalog.ObjRow, f Filter, filterIdx int) *Table {
	tabRow, ok := co.registry.Tab.FindByObjID(objRow.ObjID)
	if !ok {
		return nil
	}
	colRows := co.registry.Col.ScanByObjID(objRow.ObjID)
	if len(colRows) == 0 {
		return nil
	}
	userRow, ok := co.registry.User.FindByUserID(objRow.Owner)
	if !ok {
		return nil
	}

	t := &Table{
		ObjID:             objRow.ObjID,
		Owner:             userRow.Name,
		Name:              objRow.Name,
		Partitions:        co.resolvePartitions(objRow.ObjID),
		Subpartitions:     co.resolveSubpartitions(objRow.ObjID),
		PrimaryKeyColumns: f.PKColumns,
		FilterOrigin:      filterIdx,
	}
	if tsRow, ok := co.registry.Ts.FindByTs(tabRow.Ts); ok {
		t.Tablespace = tsRow.Name
	}

	for _, c := range colRows {
		if c.Property != nil {
			if new(big.Int).And(c.Property, colPropertyDropped).Sign() != 0 ||
				new(big.Int).And(c.Property, colPropertyInvisible).Sign() != 0 {
				continue
			}
		}
		col := Column{
			Name:        c.Name,
			Position:    c.ColPos,
			TypeCode:    c.TypeCode,
			Length:      c.Length,
			Precision:   c.Precision,
			Scale:       c.Scale,
			CharsetForm: c.CharsetForm,
			CharsetID:   c.CharsetID,
			Nullable:    c.Nullable != 0,
			Property:    c.Property,
		}
		if ecol, ok := co.registry.ECol.FindByTabColNum(objRow.ObjID, c.ColPos); ok {
			guard := ecol.GuardID
			col.GuardID = &guard
		}
		col.Lob = co.resolveLob(objRow.ObjID, c.InternalCol)
		t.Columns = append(t.Columns, col)
	}
	sort.Slice(t.Columns, func(i, j int) bool { return t.Columns[i].Position < t.Columns[j].Position })

	t.Supplemental = co.resolveSupplemental(objRow.ObjID, f)
	return t
}

func (co *Orchestrator) resolvePartitions(baseObjID uint32) map[uint32]uint32 {
	parts := co.registry.TabPart.ScanByBo(baseObjID)
	comParts := co.registry.TabComPart.ScanByBo(baseObjID)
	if len(parts) == 0 && len(comParts) == 0 {
		return nil
	}
	out := make(map[uint32]uint32, len(parts)+len(comParts))
	for _, p := range parts {
		out[p.ObjID] = p.Bo
	}
	for _, p := range comParts {
		out[p.ObjID] = p.Bo
	}
	return out
}

func (co *Orchestrator) resolveSubpartitions(baseObjID uint32) map[uint32]uint32 {
	out := make(map[uint32]uint32)
	for _, comPart := range co.registry.TabComPart.ScanByBo(baseObjID) {
		for _, sub := range co.registry.TabSubPart.ScanByPObj(comPart.ObjID) {
			out[sub.ObjID] = comPart.ObjID
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (co *Orchestrator) resolveLob(objID uint32, internalCol int16) *LobLayout {
	var found *catalog.LobRow
	for _, id := range co.registry.Lob.All() {
		rec, ok := co.registry.Lob.FindByRowID(id)
		if !ok || rec.ObjID != objID || rec.IntCol != internalCol {
			continue
		}
		found = rec
		break
	}
	if found == nil {
		return nil
	}
	layout := &LobLayout{LObj: found.LObj}
	if tsRow, ok := co.registry.Ts.FindByTs(found.Ts); ok {
		layout.Tablespace = tsRow.Name
	}
	for _, frag := range co.registry.LobFrag.ScanByParentObj(found.LObj) {
		layout.Fragments = append(layout.Fragments, frag.FragObj)
	}
	for _, part := range co.registry.LobCompPart.ScanByLObj(found.LObj) {
		layout.CompPart = append(layout.CompPart, part.PartObj)
	}
	return layout
}

func (co *Orchestrator) resolveSupplemental(objID uint32, f Filter) SupplementalLogOptions {
	opts := SupplementalLogOptions{
		Primary: co.options.SupplementalLogPrimary,
		All:     co.options.SupplementalLogAll || f.Options.SupplementalAll,
		Columns: make(map[int16]bool),
	}
	if opts.Primary {
		for col := range f.PKColumns {
			opts.Columns[col] = true
		}
	}
	if opts.All {
		for _, c := range co.registry.Col.ScanByObjID(objID) {
			opts.Columns[c.InternalCol] = true
		}
		return opts
	}
	ccols := co.registry.CCol.ScanByObjID(objID)
	for _, cdef := range co.registry.CDef.ScanByObjID(objID) {
		for _, ccol := range ccols {
			if ccol.ConID == cdef.ConID {
				opts.Columns[ccol.InternalCol] = true
			}
		}
	}
	return opts
}
