package catalog

// Registry owns one instance of every catalog table and tracks whether
// anything in any of them has been touched since the last commit — the
// aggregate flag CO's orchestration step checks first (§4.3 step 1:
// "if no catalog table was touched since the last commit, return
// immediately").
type Registry struct {
	User         *UserTable
	Obj          *ObjTable
	Col          *ColTable
	CCol         *CColTable
	CDef         *CDefTable
	DeferredStg  *DeferredStgTable
	ECol         *EColTable
	Seg          *SegTable
	Tab          *TabTable
	TabPart      *TabPartTable
	TabComPart   *TabComPartTable
	TabSubPart   *TabSubPartTable
	Ts           *TsTable
	Lob          *LobTable
	LobFrag      *LobFragTable
	LobCompPart  *LobCompPartTable

	dirty bool
}

// NewRegistry creates an empty set of catalog tables.
func NewRegistry() *Registry {
	return &Registry{
		User:        NewUserTable(),
		Obj:         NewObjTable(),
		Col:         NewColTable(),
		CCol:        NewCColTable(),
		CDef:        NewCDefTable(),
		DeferredStg: NewDeferredStgTable(),
		ECol:        NewEColTable(),
		Seg:         NewSegTable(),
		Tab:         NewTabTable(),
		TabPart:     NewTabPartTable(),
		TabComPart:  NewTabComPartTable(),
		TabSubPart:  NewTabSubPartTable(),
		Ts:          NewTsTable(),
		Lob:         NewLobTable(),
		LobFrag:     NewLobFragTable(),
		LobCompPart: NewLobCompPartTable(),
	}
}

// MarkDirty records that some catalog table changed since the last
// commit. STI calls this alongside every per-table MarkTouched, since
// the per-table touched sets alone don't tell CO whether *any* table
// needs a rebuild without walking all sixteen of them.
func (r *Registry) MarkDirty() {
	r.dirty = true
}

// Dirty reports whether any catalog table has been touched since the
// last ClearDirty.
func (r *Registry) Dirty() bool {
	return r.dirty
}

// ClearDirty resets the aggregate flag and every table's touched set,
// at the end of a commit (§4.3 step 5).
func (r *Registry) ClearDirty() {
	r.dirty = false
	r.User.ClearTouched()
	r.Obj.ClearTouched()
	r.Col.ClearTouched()
	r.CCol.ClearTouched()
	r.CDef.ClearTouched()
	r.DeferredStg.ClearTouched()
	r.ECol.ClearTouched()
	r.Seg.ClearTouched()
	r.Tab.ClearTouched()
	r.TabPart.ClearTouched()
	r.TabComPart.ClearTouched()
	r.TabSubPart.ClearTouched()
	r.Ts.ClearTouched()
	r.Lob.ClearTouched()
	r.LobFrag.ClearTouched()
	r.LobCompPart.ClearTouched()
}
