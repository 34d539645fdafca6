package dictdiff

// CatalogTable enumerates the sixteen catalog tables STI dispatches on;
// row operations against any other (user) table never reach this
// package (§4.2: "only catalog tables are dispatched here").
type CatalogTable int

const (
	TableUser CatalogTable = iota
	TableObj
	TableCol
	TableCCol
	TableCDef
	TableDeferredStg
	TableECol
	TableSeg
	TableTab
	TableTabPart
	TableTabComPart
	TableTabSubPart
	TableTs
	TableLob
	TableLobFrag
	TableLobCompPart
)

func (t CatalogTable) String() string {
	switch t {
	case TableUser:
		return "SYS.USER$"
	case TableObj:
		return "SYS.OBJ$"
	case TableCol:
		return "SYS.COL$"
	case TableCCol:
		return "SYS.CCOL$"
	case TableCDef:
		return "SYS.CDEF$"
	case TableDeferredStg:
		return "SYS.DEFERRED_STG$"
	case TableECol:
		return "SYS.ECOL$"
	case TableSeg:
		return "SYS.SEG$"
	case TableTab:
		return "SYS.TAB$"
	case TableTabPart:
		return "SYS.TABPART$"
	case TableTabComPart:
		return "SYS.TABCOMPART$"
	case TableTabSubPart:
		return "SYS.TABSUBPART$"
	case TableTs:
		return "SYS.TS$"
	case TableLob:
		return "SYS.LOB$"
	case TableLobFrag:
		return "SYS.LOBFRAG$"
	case TableLobCompPart:
		return "SYS.LOBCOMPPART$"
	default:
		return "SYS.UNKNOWN$"
	}
}
