// Package checkpoint (de)serializes the Catalog Row Store and Derived
// Schema to durable storage, using encoding/json the way this lineage's
// own pkg/config reads its config file with bare encoding/json — no
// ecosystem codec is warranted for this module's checkpoint format
// either, since §6 mandates a specific JSON document shape (one array
// per catalog table, record fields keyed by source-column name) rather
// than an open choice of wire format.
package checkpoint

import (
	"math/big"

	"github.com/openlogreplicator-go/dictionary/internal/catalog"
	"github.com/openlogreplicator-go/dictionary/internal/schema"
)

// SchemaVersion is the replicator's build constant; a checkpoint whose
// header doesn't match fails start-up (§6).
const SchemaVersion = 1

// Header guards a checkpoint document against being loaded by an
// incompatible build.
type Header struct {
	SchemaVersion int    `json:"schema_version"`
	CheckpointID  string `json:"checkpoint_id"`
	Scn           uint64 `json:"scn"`
}

type userRec struct {
	RowID  string `json:"rowid"`
	UserID uint32 `json:"USER#"`
	Name   string `json:"NAME"`
	Spare1 string `json:"SPARE1,omitempty"`
}

type objRec struct {
	RowID     string `json:"rowid"`
	Owner     uint32 `json:"OWNER#"`
	ObjID     uint32 `json:"OBJ#"`
	DataObjID uint32 `json:"DATAOBJ#"`
	Type      uint16 `json:"TYPE#"`
	Name      string `json:"NAME"`
	Flags     uint32 `json:"FLAGS"`
}

type colRec struct {
	RowID       string `json:"rowid"`
	ObjID       uint32 `json:"OBJ#"`
	ColPos      int16  `json:"COL#"`
	SegCol      int16  `json:"SEGCOL#"`
	InternalCol int16  `json:"INTCOL#"`
	Name        string `json:"NAME"`
	TypeCode    uint16 `json:"TYPE#"`
	Length      uint64 `json:"LENGTH"`
	Precision   int64  `json:"PRECISION#"`
	Scale       int64  `json:"SCALE"`
	CharsetForm uint64 `json:"CHARSETFORM"`
	CharsetID   uint64 `json:"CHARSETID"`
	Nullable    int64  `json:"NULL$"`
	Property    string `json:"PROPERTY,omitempty"`
}

type ccolRec struct {
	RowID       string `json:"rowid"`
	ConID       uint32 `json:"CON#"`
	InternalCol int16  `json:"INTCOL#"`
	ObjID       uint32 `json:"OBJ#"`
	Spare1      string `json:"SPARE1,omitempty"`
}

type cdefRec struct {
	RowID string `json:"rowid"`
	ConID uint32 `json:"CON#"`
	ObjID uint32 `json:"OBJ#"`
	Type  uint16 `json:"TYPE#"`
}

type deferredStgRec struct {
	RowID    string `json:"rowid"`
	ObjID    uint32 `json:"OBJ#"`
	FlagsStg uint64 `json:"FLAGS_STG"`
}

type ecolRec struct {
	RowID   string `json:"rowid"`
	TabObj  uint32 `json:"TABOBJ#"`
	ColNum  int16  `json:"COLNUM"`
	GuardID int16  `json:"GUARD_ID"`
}

type segRec struct {
	RowID  string `json:"rowid"`
	File   uint32 `json:"FILE#"`
	Block  uint32 `json:"BLOCK#"`
	Ts     uint32 `json:"TS#"`
	Spare1 string `json:"SPARE1,omitempty"`
}

type tabRec struct {
	RowID     string `json:"rowid"`
	ObjID     uint32 `json:"OBJ#"`
	DataObjID uint32 `json:"DATAOBJ#"`
	Ts        uint32 `json:"TS#"`
	CluCols   int16  `json:"CLUCOLS"`
	Flags     uint32 `json:"FLAGS"`
	Property  string `json:"PROPERTY,omitempty"`
}

type tabPartRec struct {
	RowID     string `json:"rowid"`
	ObjID     uint32 `json:"OBJ#"`
	DataObjID uint32 `json:"DATAOBJ#"`
	Bo        uint32 `json:"BO#"`
}

type tabSubPartRec struct {
	RowID     string `json:"rowid"`
	ObjID     uint32 `json:"OBJ#"`
	DataObjID uint32 `json:"DATAOBJ#"`
	PObj      uint32 `json:"POBJ#"`
}

type tsRec struct {
	RowID     string `json:"rowid"`
	Ts        uint32 `json:"TS#"`
	Name      string `json:"NAME"`
	BlockSize uint32 `json:"BLOCKSIZE"`
}

type lobRec struct {
	RowID  string `json:"rowid"`
	ObjID  uint32 `json:"OBJ#"`
	ColID  int16  `json:"COL#"`
	IntCol int16  `json:"INTCOL#"`
	LObj   uint32 `json:"LOBJ#"`
	Ts     uint32 `json:"TS#"`
}

type lobFragRec struct {
	RowID     string `json:"rowid"`
	FragObj   uint32 `json:"FRAGOBJ#"`
	ParentObj uint32 `json:"PARENTOBJ#"`
	Ts        uint32 `json:"TS#"`
}

type lobCompPartRec struct {
	RowID   string `json:"rowid"`
	PartObj uint32 `json:"PARTOBJ#"`
	LObj    uint32 `json:"LOBJ#"`
}

type tableRec struct {
	ObjID        uint32            `json:"obj_id"`
	Owner        string            `json:"owner"`
	Name         string            `json:"name"`
	Tablespace   string            `json:"tablespace"`
	FilterOrigin int               `json:"filter_origin"`
	Columns      []columnRec       `json:"columns"`
	Partitions   map[uint32]uint32 `json:"partitions,omitempty"`
}

type columnRec struct {
	Name        string `json:"name"`
	Position    int16  `json:"position"`
	TypeCode    uint16 `json:"type_code"`
	Length      uint64 `json:"length"`
	Precision   int64  `json:"precision"`
	Scale       int64  `json:"scale"`
	CharsetForm uint64 `json:"charset_form"`
	CharsetID   uint64 `json:"charset_id"`
	Nullable    bool   `json:"nullable"`
}

// Document is the checkpoint file's top-level JSON shape (§6): one array
// per catalog table plus one `schema` array, guarded by Header.
type Document struct {
	Header      Header           `json:"header"`
	User        []userRec        `json:"user"`
	Obj         []objRec         `json:"obj"`
	Col         []colRec         `json:"col"`
	CCol        []ccolRec        `json:"ccol"`
	CDef        []cdefRec        `json:"cdef"`
	DeferredStg []deferredStgRec `json:"deferred_stg"`
	ECol        []ecolRec        `json:"ecol"`
	Seg         []segRec         `json:"seg"`
	Tab         []tabRec         `json:"tab"`
	TabPart     []tabPartRec     `json:"tabpart"`
	TabComPart  []tabPartRec     `json:"tabcompart"`
	TabSubPart  []tabSubPartRec  `json:"tabsubpart"`
	Ts          []tsRec          `json:"ts"`
	Lob         []lobRec         `json:"lob"`
	LobFrag     []lobFragRec     `json:"lobfrag"`
	LobCompPart []lobCompPartRec `json:"lobcomppart"`
	Schema      []tableRec       `json:"schema"`
}

func bigToStr(b *big.Int) string {
	if b == nil {
		return ""
	}
	return b.String()
}

func strToBig(s string) *big.Int {
	if s == "" {
		return nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil
	}
	return n
}

// FromRegistry snapshots registry and ds into a checkpoint Document at
// the given SCN and checkpoint id.
func FromRegistry(registry *catalog.Registry, ds *schema.DS, scn uint64, checkpointID string) *Document {
	doc := &Document{Header: Header{SchemaVersion: SchemaVersion, CheckpointID: checkpointID, Scn: scn}}

	for _, id := range registry.User.All() {
		r, _ := registry.User.FindByRowID(id)
		doc.User = append(doc.User, userRec{RowID: r.RowID.String(), UserID: r.UserID, Name: r.Name, Spare1: bigToStr(r.Spare1)})
	}
	for _, id := range registry.Obj.All() {
		r, _ := registry.Obj.FindByRowID(id)
		doc.Obj = append(doc.Obj, objRec{RowID: r.RowID.String(), Owner: r.Owner, ObjID: r.ObjID, DataObjID: r.DataObjID, Type: r.Type, Name: r.Name, Flags: r.Flags})
	}
	for _, id := range registry.Col.All() {
		r, _ := registry.Col.FindByRowID(id)
		doc.Col = append(doc.Col, colRec{
			RowID: r.RowID.String(), ObjID: r.ObjID, ColPos: r.ColPos, SegCol: r.SegCol, InternalCol: r.InternalCol,
			Name: r.Name, TypeCode: r.TypeCode, Length: r.Length, Precision: r.Precision, Scale: r.Scale,
			CharsetForm: r.CharsetForm, CharsetID: r.CharsetID, Nullable: r.Nullable, Property: bigToStr(r.Property),
		})
	}
	for _, id := range registry.CCol.All() {
		r, _ := registry.CCol.FindByRowID(id)
		doc.CCol = append(doc.CCol, ccolRec{RowID: r.RowID.String(), ConID: r.ConID, InternalCol: r.InternalCol, ObjID: r.ObjID, Spare1: bigToStr(r.Spare1)})
	}
	for _, id := range registry.CDef.All() {
		r, _ := registry.CDef.FindByRowID(id)
		doc.CDef = append(doc.CDef, cdefRec{RowID: r.RowID.String(), ConID: r.ConID, ObjID: r.ObjID, Type: r.Type})
	}
	for _, id := range registry.DeferredStg.All() {
		r, _ := registry.DeferredStg.FindByRowID(id)
		doc.DeferredStg = append(doc.DeferredStg, deferredStgRec{RowID: r.RowID.String(), ObjID: r.ObjID, FlagsStg: r.FlagsStg})
	}
	for _, id := range registry.ECol.All() {
		r, _ := registry.ECol.FindByRowID(id)
		doc.ECol = append(doc.ECol, ecolRec{RowID: r.RowID.String(), TabObj: r.TabObj, ColNum: r.ColNum, GuardID: r.GuardID})
	}
	for _, id := range registry.Seg.All() {
		r, _ := registry.Seg.FindByRowID(id)
		doc.Seg = append(doc.Seg, segRec{RowID: r.RowID.String(), File: r.File, Block: r.Block, Ts: r.Ts, Spare1: bigToStr(r.Spare1)})
	}
	for _, id := range registry.Tab.All() {
		r, _ := registry.Tab.FindByRowID(id)
		doc.Tab = append(doc.Tab, tabRec{RowID: r.RowID.String(), ObjID: r.ObjID, DataObjID: r.DataObjID, Ts: r.Ts, CluCols: r.CluCols, Flags: r.Flags, Property: bigToStr(r.Property)})
	}
	for _, id := range registry.TabPart.All() {
		r, _ := registry.TabPart.FindByRowID(id)
		doc.TabPart = append(doc.TabPart, tabPartRec{RowID: r.RowID.String(), ObjID: r.ObjID, DataObjID: r.DataObjID, Bo: r.Bo})
	}
	for _, id := range registry.TabComPart.All() {
		r, _ := registry.TabComPart.FindByRowID(id)
		doc.TabComPart = append(doc.TabComPart, tabPartRec{RowID: r.RowID.String(), ObjID: r.ObjID, DataObjID: r.DataObjID, Bo: r.Bo})
	}
	for _, id := range registry.TabSubPart.All() {
		r, _ := registry.TabSubPart.FindByRowID(id)
		doc.TabSubPart = append(doc.TabSubPart, tabSubPartRec{RowID: r.RowID.String(), ObjID: r.ObjID, DataObjID: r.DataObjID, PObj: r.PObj})
	}
	for _, id := range registry.Ts.All() {
		r, _ := registry.Ts.FindByRowID(id)
		doc.Ts = append(doc.Ts, tsRec{RowID: r.RowID.String(), Ts: r.Ts, Name: r.Name, BlockSize: r.BlockSize})
	}
	for _, id := range registry.Lob.All() {
		r, _ := registry.Lob.FindByRowID(id)
		doc.Lob = append(doc.Lob, lobRec{RowID: r.RowID.String(), ObjID: r.ObjID, ColID: r.ColID, IntCol: r.IntCol, LObj: r.LObj, Ts: r.Ts})
	}
	for _, id := range registry.LobFrag.All() {
		r, _ := registry.LobFrag.FindByRowID(id)
		doc.LobFrag = append(doc.LobFrag, lobFragRec{RowID: r.RowID.String(), FragObj: r.FragObj, ParentObj: r.ParentObj, Ts: r.Ts})
	}
	for _, id := range registry.LobCompPart.All() {
		r, _ := registry.LobCompPart.FindByRowID(id)
		doc.LobCompPart = append(doc.LobCompPart, lobCompPartRec{RowID: r.RowID.String(), PartObj: r.PartObj, LObj: r.LObj})
	}

	if ds != nil {
		for t := range ds.IterateTables() {
			tr := tableRec{ObjID: t.ObjID, Owner: t.Owner, Name: t.Name, Tablespace: t.Tablespace, FilterOrigin: t.FilterOrigin, Partitions: t.Partitions}
			for _, c := range t.Columns {
				tr.Columns = append(tr.Columns, columnRec{
					Name: c.Name, Position: c.Position, TypeCode: c.TypeCode, Length: c.Length,
					Precision: c.Precision, Scale: c.Scale, CharsetForm: c.CharsetForm, CharsetID: c.CharsetID, Nullable: c.Nullable,
				})
			}
			doc.Schema = append(doc.Schema, tr)
		}
	}

	return doc
}

// ApplyTo populates registry from doc's catalog-table arrays. The caller
// is responsible for forcing a DS rebuild afterward (§6: "a DS rebuild
// is forced" after replay), since a freshly-populated CRS is dirty by
// construction.
func (doc *Document) ApplyTo(registry *catalog.Registry) error {
	for _, r := range doc.User {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.User.Add(&catalog.UserRow{RowID: rowID, UserID: r.UserID, Name: r.Name, Spare1: strToBig(r.Spare1)})
	}
	for _, r := range doc.Obj {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.Obj.Add(&catalog.ObjRow{RowID: rowID, Owner: r.Owner, ObjID: r.ObjID, DataObjID: r.DataObjID, Type: r.Type, Name: r.Name, Flags: r.Flags})
	}
	for _, r := range doc.Col {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.Col.Add(&catalog.ColRow{
			RowID: rowID, ObjID: r.ObjID, ColPos: r.ColPos, SegCol: r.SegCol, InternalCol: r.InternalCol,
			Name: r.Name, TypeCode: r.TypeCode, Length: r.Length, Precision: r.Precision, Scale: r.Scale,
			CharsetForm: r.CharsetForm, CharsetID: r.CharsetID, Nullable: r.Nullable, Property: strToBig(r.Property),
		})
	}
	for _, r := range doc.CCol {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.CCol.Add(&catalog.CColRow{RowID: rowID, ConID: r.ConID, InternalCol: r.InternalCol, ObjID: r.ObjID, Spare1: strToBig(r.Spare1)})
	}
	for _, r := range doc.CDef {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.CDef.Add(&catalog.CDefRow{RowID: rowID, ConID: r.ConID, ObjID: r.ObjID, Type: r.Type})
	}
	for _, r := range doc.DeferredStg {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.DeferredStg.Add(&catalog.DeferredStgRow{RowID: rowID, ObjID: r.ObjID, FlagsStg: r.FlagsStg})
	}
	for _, r := range doc.ECol {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.ECol.Add(&catalog.EColRow{RowID: rowID, TabObj: r.TabObj, ColNum: r.ColNum, GuardID: r.GuardID})
	}
	for _, r := range doc.Seg {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.Seg.Add(&catalog.SegRow{RowID: rowID, File: r.File, Block: r.Block, Ts: r.Ts, Spare1: strToBig(r.Spare1)})
	}
	for _, r := range doc.Tab {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.Tab.Add(&catalog.TabRow{RowID: rowID, ObjID: r.ObjID, DataObjID: r.DataObjID, Ts: r.Ts, CluCols: r.CluCols, Flags: r.Flags, Property: strToBig(r.Property)})
	}
	for _, r := range doc.TabPart {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.TabPart.Add(&catalog.TabPartRow{RowID: rowID, ObjID: r.ObjID, DataObjID: r.DataObjID, Bo: r.Bo})
	}
	for _, r := range doc.TabComPart {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.TabComPart.Add(&catalog.TabComPartRow{RowID: rowID, ObjID: r.ObjID, DataObjID: r.DataObjID, Bo: r.Bo})
	}
	for _, r := range doc.TabSubPart {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.TabSubPart.Add(&catalog.TabSubPartRow{RowID: rowID, ObjID: r.ObjID, DataObjID: r.DataObjID, PObj: r.PObj})
	}
	for _, r := range doc.Ts {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.Ts.Add(&catalog.TsRow{RowID: rowID, Ts: r.Ts, Name: r.Name, BlockSize: r.BlockSize})
	}
	for _, r := range doc.Lob {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.Lob.Add(&catalog.LobRow{RowID: rowID, ObjID: r.ObjID, ColID: r.ColID, IntCol: r.IntCol, LObj: r.LObj, Ts: r.Ts})
	}
	for _, r := range doc.LobFrag {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.LobFrag.Add(&catalog.LobFragRow{RowID: rowID, FragObj: r.FragObj, ParentObj: r.ParentObj, Ts: r.Ts})
	}
	for _, r := range doc.LobCompPart {
		rowID, err := catalog.ParseRowId(r.RowID)
		if err != nil {
			return err
		}
		registry.LobCompPart.Add(&catalog.LobCompPartRow{RowID: rowID, PartObj: r.PartObj, LObj: r.LObj})
	}
	registry.MarkDirty()
	return nil
}
