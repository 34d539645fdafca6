package dictdiff

import (
	"github.com/openlogreplicator-go/dictionary/internal/catalog"
)

// userDesc describes SYS.USER$ for the generic apply* functions.
func userDesc(r *catalog.Registry) CatalogDesc[catalog.UserRow] {
	return CatalogDesc[catalog.UserRow]{
		Name:    TableUser.String(),
		NewZero: func(rowID catalog.RowId) *catalog.UserRow { return &catalog.UserRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.UserRow]{
			"USER#": func(rec *catalog.UserRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, TableUser.String(), "USER#", img)
				if err != nil {
					return err
				}
				rec.UserID = v
				return nil
			},
			"NAME": func(rec *catalog.UserRow, offset uint64, img ColumnImage) error {
				v, err := coerceString(offset, TableUser.String(), "NAME", 0, img)
				if err != nil {
					return err
				}
				rec.Name = v
				return nil
			},
			"SPARE1": func(rec *catalog.UserRow, offset uint64, img ColumnImage) error {
				v, err := coerceBigUint(offset, TableUser.String(), "SPARE1", img)
				if err != nil {
					return err
				}
				rec.Spare1 = v
				return nil
			},
		},
		Ops: TableOps[catalog.UserRow]{
			Find:        r.User.FindByRowID,
			Add:         r.User.Add,
			Remove:      r.User.Remove,
			MarkTouched: func(rec *catalog.UserRow) { r.User.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func objDesc(r *catalog.Registry) CatalogDesc[catalog.ObjRow] {
	t := TableObj.String()
	return CatalogDesc[catalog.ObjRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.ObjRow { return &catalog.ObjRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.ObjRow]{
			"OWNER#": func(rec *catalog.ObjRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OWNER#", img)
				if err != nil {
					return err
				}
				rec.Owner = v
				return nil
			},
			"OBJ#": func(rec *catalog.ObjRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OBJ#", img)
				if err != nil {
					return err
				}
				rec.ObjID = v
				return nil
			},
			"DATAOBJ#": func(rec *catalog.ObjRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "DATAOBJ#", img)
				if err != nil {
					return err
				}
				rec.DataObjID = v
				return nil
			},
			"TYPE#": func(rec *catalog.ObjRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16u(offset, t, "TYPE#", img)
				if err != nil {
					return err
				}
				rec.Type = v
				return nil
			},
			"NAME": func(rec *catalog.ObjRow, offset uint64, img ColumnImage) error {
				v, err := coerceString(offset, t, "NAME", 0, img)
				if err != nil {
					return err
				}
				rec.Name = v
				return nil
			},
			"FLAGS": func(rec *catalog.ObjRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "FLAGS", img)
				if err != nil {
					return err
				}
				rec.Flags = v
				return nil
			},
		},
		Ops: TableOps[catalog.ObjRow]{
			Find:        r.Obj.FindByRowID,
			Add:         r.Obj.Add,
			Remove:      r.Obj.Remove,
			MarkTouched: func(rec *catalog.ObjRow) { r.Obj.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func colDesc(r *catalog.Registry) CatalogDesc[catalog.ColRow] {
	t := TableCol.String()
	return CatalogDesc[catalog.ColRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.ColRow { return &catalog.ColRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.ColRow]{
			"OBJ#": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OBJ#", img)
				if err != nil {
					return err
				}
				rec.ObjID = v
				return nil
			},
			"COL#": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16(offset, t, "COL#", img)
				if err != nil {
					return err
				}
				rec.ColPos = v
				return nil
			},
			"SEGCOL#": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16(offset, t, "SEGCOL#", img)
				if err != nil {
					return err
				}
				rec.SegCol = v
				return nil
			},
			"INTCOL#": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16(offset, t, "INTCOL#", img)
				if err != nil {
					return err
				}
				rec.InternalCol = v
				return nil
			},
			"NAME": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceString(offset, t, "NAME", 0, img)
				if err != nil {
					return err
				}
				rec.Name = v
				return nil
			},
			"TYPE#": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16u(offset, t, "TYPE#", img)
				if err != nil {
					return err
				}
				rec.TypeCode = v
				return nil
			},
			"LENGTH": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber64u(offset, t, "LENGTH", img)
				if err != nil {
					return err
				}
				rec.Length = v
				return nil
			},
			"PRECISION#": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber64(offset, t, "PRECISION#", img)
				if err != nil {
					return err
				}
				rec.Precision = v
				return nil
			},
			"SCALE": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber64(offset, t, "SCALE", img)
				if err != nil {
					return err
				}
				rec.Scale = v
				return nil
			},
			"CHARSETFORM": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber64u(offset, t, "CHARSETFORM", img)
				if err != nil {
					return err
				}
				rec.CharsetForm = v
				return nil
			},
			"CHARSETID": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber64u(offset, t, "CHARSETID", img)
				if err != nil {
					return err
				}
				rec.CharsetID = v
				return nil
			},
			"NULL$": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber64(offset, t, "NULL$", img)
				if err != nil {
					return err
				}
				rec.Nullable = v
				return nil
			},
			"PROPERTY": func(rec *catalog.ColRow, offset uint64, img ColumnImage) error {
				v, err := coerceBigUint(offset, t, "PROPERTY", img)
				if err != nil {
					return err
				}
				rec.Property = v
				return nil
			},
		},
		Ops: TableOps[catalog.ColRow]{
			Find:        r.Col.FindByRowID,
			Add:         r.Col.Add,
			Remove:      r.Col.Remove,
			MarkTouched: func(rec *catalog.ColRow) { r.Col.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func ccolDesc(r *catalog.Registry) CatalogDesc[catalog.CColRow] {
	t := TableCCol.String()
	return CatalogDesc[catalog.CColRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.CColRow { return &catalog.CColRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.CColRow]{
			"CON#": func(rec *catalog.CColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "CON#", img)
				if err != nil {
					return err
				}
				rec.ConID = v
				return nil
			},
			"INTCOL#": func(rec *catalog.CColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16(offset, t, "INTCOL#", img)
				if err != nil {
					return err
				}
				rec.InternalCol = v
				return nil
			},
			"OBJ#": func(rec *catalog.CColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OBJ#", img)
				if err != nil {
					return err
				}
				rec.ObjID = v
				return nil
			},
			"SPARE1": func(rec *catalog.CColRow, offset uint64, img ColumnImage) error {
				v, err := coerceBigUint(offset, t, "SPARE1", img)
				if err != nil {
					return err
				}
				rec.Spare1 = v
				return nil
			},
		},
		Ops: TableOps[catalog.CColRow]{
			Find:        r.CCol.FindByRowID,
			Add:         r.CCol.Add,
			Remove:      r.CCol.Remove,
			MarkTouched: func(rec *catalog.CColRow) { r.CCol.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func cdefDesc(r *catalog.Registry) CatalogDesc[catalog.CDefRow] {
	t := TableCDef.String()
	return CatalogDesc[catalog.CDefRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.CDefRow { return &catalog.CDefRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.CDefRow]{
			"CON#": func(rec *catalog.CDefRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "CON#", img)
				if err != nil {
					return err
				}
				rec.ConID = v
				return nil
			},
			"OBJ#": func(rec *catalog.CDefRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OBJ#", img)
				if err != nil {
					return err
				}
				rec.ObjID = v
				return nil
			},
			"TYPE#": func(rec *catalog.CDefRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16u(offset, t, "TYPE#", img)
				if err != nil {
					return err
				}
				rec.Type = v
				return nil
			},
		},
		Ops: TableOps[catalog.CDefRow]{
			Find:        r.CDef.FindByRowID,
			Add:         r.CDef.Add,
			Remove:      r.CDef.Remove,
			MarkTouched: func(rec *catalog.CDefRow) { r.CDef.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func deferredStgDesc(r *catalog.Registry) CatalogDesc[catalog.DeferredStgRow] {
	t := TableDeferredStg.String()
	return CatalogDesc[catalog.DeferredStgRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.DeferredStgRow { return &catalog.DeferredStgRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.DeferredStgRow]{
			"OBJ#": func(rec *catalog.DeferredStgRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OBJ#", img)
				if err != nil {
					return err
				}
				rec.ObjID = v
				return nil
			},
			"FLAGS_STG": func(rec *catalog.DeferredStgRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber64u(offset, t, "FLAGS_STG", img)
				if err != nil {
					return err
				}
				rec.FlagsStg = v
				return nil
			},
		},
		Ops: TableOps[catalog.DeferredStgRow]{
			Find:        r.DeferredStg.FindByRowID,
			Add:         r.DeferredStg.Add,
			Remove:      r.DeferredStg.Remove,
			MarkTouched: func(rec *catalog.DeferredStgRow) { r.DeferredStg.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func ecolDesc(r *catalog.Registry) CatalogDesc[catalog.EColRow] {
	t := TableECol.String()
	return CatalogDesc[catalog.EColRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.EColRow { return &catalog.EColRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.EColRow]{
			"TABOBJ#": func(rec *catalog.EColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "TABOBJ#", img)
				if err != nil {
					return err
				}
				rec.TabObj = v
				return nil
			},
			"COLNUM": func(rec *catalog.EColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16(offset, t, "COLNUM", img)
				if err != nil {
					return err
				}
				rec.ColNum = v
				return nil
			},
			"GUARD_ID": func(rec *catalog.EColRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16(offset, t, "GUARD_ID", img)
				if err != nil {
					return err
				}
				rec.GuardID = v
				return nil
			},
		},
		Ops: TableOps[catalog.EColRow]{
			Find:        r.ECol.FindByRowID,
			Add:         r.ECol.Add,
			Remove:      r.ECol.Remove,
			MarkTouched: func(rec *catalog.EColRow) { r.ECol.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func segDesc(r *catalog.Registry) CatalogDesc[catalog.SegRow] {
	t := TableSeg.String()
	return CatalogDesc[catalog.SegRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.SegRow { return &catalog.SegRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.SegRow]{
			"FILE#": func(rec *catalog.SegRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "FILE#", img)
				if err != nil {
					return err
				}
				rec.File = v
				return nil
			},
			"BLOCK#": func(rec *catalog.SegRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "BLOCK#", img)
				if err != nil {
					return err
				}
				rec.Block = v
				return nil
			},
			"TS#": func(rec *catalog.SegRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "TS#", img)
				if err != nil {
					return err
				}
				rec.Ts = v
				return nil
			},
			"SPARE1": func(rec *catalog.SegRow, offset uint64, img ColumnImage) error {
				v, err := coerceBigUint(offset, t, "SPARE1", img)
				if err != nil {
					return err
				}
				rec.Spare1 = v
				return nil
			},
		},
		Ops: TableOps[catalog.SegRow]{
			Find:        r.Seg.FindByRowID,
			Add:         r.Seg.Add,
			Remove:      r.Seg.Remove,
			MarkTouched: func(rec *catalog.SegRow) { r.Seg.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func tabDesc(r *catalog.Registry) CatalogDesc[catalog.TabRow] {
	t := TableTab.String()
	return CatalogDesc[catalog.TabRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.TabRow { return &catalog.TabRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.TabRow]{
			"OBJ#": func(rec *catalog.TabRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OBJ#", img)
				if err != nil {
					return err
				}
				rec.ObjID = v
				return nil
			},
			"DATAOBJ#": func(rec *catalog.TabRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "DATAOBJ#", img)
				if err != nil {
					return err
				}
				rec.DataObjID = v
				return nil
			},
			"TS#": func(rec *catalog.TabRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "TS#", img)
				if err != nil {
					return err
				}
				rec.Ts = v
				return nil
			},
			"CLUCOLS": func(rec *catalog.TabRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16(offset, t, "CLUCOLS", img)
				if err != nil {
					return err
				}
				rec.CluCols = v
				return nil
			},
			"FLAGS": func(rec *catalog.TabRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "FLAGS", img)
				if err != nil {
					return err
				}
				rec.Flags = v
				return nil
			},
			"PROPERTY": func(rec *catalog.TabRow, offset uint64, img ColumnImage) error {
				v, err := coerceBigUint(offset, t, "PROPERTY", img)
				if err != nil {
					return err
				}
				rec.Property = v
				return nil
			},
		},
		Ops: TableOps[catalog.TabRow]{
			Find:        r.Tab.FindByRowID,
			Add:         r.Tab.Add,
			Remove:      r.Tab.Remove,
			MarkTouched: func(rec *catalog.TabRow) { r.Tab.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func tabPartDesc(r *catalog.Registry) CatalogDesc[catalog.TabPartRow] {
	t := TableTabPart.String()
	return CatalogDesc[catalog.TabPartRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.TabPartRow { return &catalog.TabPartRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.TabPartRow]{
			"OBJ#": func(rec *catalog.TabPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OBJ#", img)
				if err != nil {
					return err
				}
				rec.ObjID = v
				return nil
			},
			"DATAOBJ#": func(rec *catalog.TabPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "DATAOBJ#", img)
				if err != nil {
					return err
				}
				rec.DataObjID = v
				return nil
			},
			"BO#": func(rec *catalog.TabPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "BO#", img)
				if err != nil {
					return err
				}
				rec.Bo = v
				return nil
			},
		},
		Ops: TableOps[catalog.TabPartRow]{
			Find:        r.TabPart.FindByRowID,
			Add:         r.TabPart.Add,
			Remove:      r.TabPart.Remove,
			MarkTouched: func(rec *catalog.TabPartRow) { r.TabPart.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func tabComPartDesc(r *catalog.Registry) CatalogDesc[catalog.TabComPartRow] {
	t := TableTabComPart.String()
	return CatalogDesc[catalog.TabComPartRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.TabComPartRow { return &catalog.TabComPartRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.TabComPartRow]{
			"OBJ#": func(rec *catalog.TabComPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OBJ#", img)
				if err != nil {
					return err
				}
				rec.ObjID = v
				return nil
			},
			"DATAOBJ#": func(rec *catalog.TabComPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "DATAOBJ#", img)
				if err != nil {
					return err
				}
				rec.DataObjID = v
				return nil
			},
			"BO#": func(rec *catalog.TabComPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "BO#", img)
				if err != nil {
					return err
				}
				rec.Bo = v
				return nil
			},
		},
		Ops: TableOps[catalog.TabComPartRow]{
			Find:        r.TabComPart.FindByRowID,
			Add:         r.TabComPart.Add,
			Remove:      r.TabComPart.Remove,
			MarkTouched: func(rec *catalog.TabComPartRow) { r.TabComPart.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func tabSubPartDesc(r *catalog.Registry) CatalogDesc[catalog.TabSubPartRow] {
	t := TableTabSubPart.String()
	return CatalogDesc[catalog.TabSubPartRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.TabSubPartRow { return &catalog.TabSubPartRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.TabSubPartRow]{
			"OBJ#": func(rec *catalog.TabSubPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OBJ#", img)
				if err != nil {
					return err
				}
				rec.ObjID = v
				return nil
			},
			"DATAOBJ#": func(rec *catalog.TabSubPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "DATAOBJ#", img)
				if err != nil {
					return err
				}
				rec.DataObjID = v
				return nil
			},
			"POBJ#": func(rec *catalog.TabSubPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "POBJ#", img)
				if err != nil {
					return err
				}
				rec.PObj = v
				return nil
			},
		},
		Ops: TableOps[catalog.TabSubPartRow]{
			Find:        r.TabSubPart.FindByRowID,
			Add:         r.TabSubPart.Add,
			Remove:      r.TabSubPart.Remove,
			MarkTouched: func(rec *catalog.TabSubPartRow) { r.TabSubPart.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func tsDesc(r *catalog.Registry) CatalogDesc[catalog.TsRow] {
	t := TableTs.String()
	return CatalogDesc[catalog.TsRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.TsRow { return &catalog.TsRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.TsRow]{
			"TS#": func(rec *catalog.TsRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "TS#", img)
				if err != nil {
					return err
				}
				rec.Ts = v
				return nil
			},
			"NAME": func(rec *catalog.TsRow, offset uint64, img ColumnImage) error {
				v, err := coerceString(offset, t, "NAME", 0, img)
				if err != nil {
					return err
				}
				rec.Name = v
				return nil
			},
			"BLOCKSIZE": func(rec *catalog.TsRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "BLOCKSIZE", img)
				if err != nil {
					return err
				}
				rec.BlockSize = v
				return nil
			},
		},
		Ops: TableOps[catalog.TsRow]{
			Find:        r.Ts.FindByRowID,
			Add:         r.Ts.Add,
			Remove:      r.Ts.Remove,
			MarkTouched: func(rec *catalog.TsRow) { r.Ts.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func lobDesc(r *catalog.Registry) CatalogDesc[catalog.LobRow] {
	t := TableLob.String()
	return CatalogDesc[catalog.LobRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.LobRow { return &catalog.LobRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.LobRow]{
			"OBJ#": func(rec *catalog.LobRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "OBJ#", img)
				if err != nil {
					return err
				}
				rec.ObjID = v
				return nil
			},
			"COL#": func(rec *catalog.LobRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16(offset, t, "COL#", img)
				if err != nil {
					return err
				}
				rec.ColID = v
				return nil
			},
			"INTCOL#": func(rec *catalog.LobRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber16(offset, t, "INTCOL#", img)
				if err != nil {
					return err
				}
				rec.IntCol = v
				return nil
			},
			"LOBJ#": func(rec *catalog.LobRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "LOBJ#", img)
				if err != nil {
					return err
				}
				rec.LObj = v
				return nil
			},
			"TS#": func(rec *catalog.LobRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "TS#", img)
				if err != nil {
					return err
				}
				rec.Ts = v
				return nil
			},
		},
		Ops: TableOps[catalog.LobRow]{
			Find:        r.Lob.FindByRowID,
			Add:         r.Lob.Add,
			Remove:      r.Lob.Remove,
			MarkTouched: func(rec *catalog.LobRow) { r.Lob.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func lobFragDesc(r *catalog.Registry) CatalogDesc[catalog.LobFragRow] {
	t := TableLobFrag.String()
	return CatalogDesc[catalog.LobFragRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.LobFragRow { return &catalog.LobFragRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.LobFragRow]{
			"FRAGOBJ#": func(rec *catalog.LobFragRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "FRAGOBJ#", img)
				if err != nil {
					return err
				}
				rec.FragObj = v
				return nil
			},
			"PARENTOBJ#": func(rec *catalog.LobFragRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "PARENTOBJ#", img)
				if err != nil {
					return err
				}
				rec.ParentObj = v
				return nil
			},
			"TS#": func(rec *catalog.LobFragRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "TS#", img)
				if err != nil {
					return err
				}
				rec.Ts = v
				return nil
			},
		},
		Ops: TableOps[catalog.LobFragRow]{
			Find:        r.LobFrag.FindByRowID,
			Add:         r.LobFrag.Add,
			Remove:      r.LobFrag.Remove,
			MarkTouched: func(rec *catalog.LobFragRow) { r.LobFrag.MarkTouched(rec); r.MarkDirty() },
		},
	}
}

func lobCompPartDesc(r *catalog.Registry) CatalogDesc[catalog.LobCompPartRow] {
	t := TableLobCompPart.String()
	return CatalogDesc[catalog.LobCompPartRow]{
		Name:    t,
		NewZero: func(rowID catalog.RowId) *catalog.LobCompPartRow { return &catalog.LobCompPartRow{RowID: rowID} },
		Columns: map[string]ColumnBinding[catalog.LobCompPartRow]{
			"PARTOBJ#": func(rec *catalog.LobCompPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "PARTOBJ#", img)
				if err != nil {
					return err
				}
				rec.PartObj = v
				return nil
			},
			"LOBJ#": func(rec *catalog.LobCompPartRow, offset uint64, img ColumnImage) error {
				v, err := coerceNumber32u(offset, t, "LOBJ#", img)
				if err != nil {
					return err
				}
				rec.LObj = v
				return nil
			},
		},
		Ops: TableOps[catalog.LobCompPartRow]{
			Find:        r.LobCompPart.FindByRowID,
			Add:         r.LobCompPart.Add,
			Remove:      r.LobCompPart.Remove,
			MarkTouched: func(rec *catalog.LobCompPartRow) { r.LobCompPart.MarkTouched(rec); r.MarkDirty() },
		},
	}
}
