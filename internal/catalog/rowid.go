// Package catalog implements the Catalog Row Store: an in-memory mirror of
// the sixteen Oracle SYS.* catalog tables the replicator tracks, each
// indexed by rowid and by the secondary keys its consumers need.
package catalog

import (
	"fmt"
	"strings"
)

// rowIdAlphabet is the 64-character alphabet used to render a rowid as an
// 18-character string. Its order is the standard base64 order (uppercase,
// lowercase, digits, '+', '/'), the same one Oracle's extended rowids use.
const rowIdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var rowIdDecodeTable [256]int8

func init() {
	for i := range rowIdDecodeTable {
		rowIdDecodeTable[i] = -1
	}
	for i := 0; i < len(rowIdAlphabet); i++ {
		rowIdDecodeTable[rowIdAlphabet[i]] = int8(i)
	}
}

// RowId is the physical address of a catalog row: a data object id, the
// data block address the row lives in, and the row's slot within that
// block. It is the primary key for every catalog table.
type RowId struct {
	DataObj uint32
	Dba     uint32
	Slot    uint16
}

// NewRowId constructs a RowId from its three physical components, the way
// the upstream reassembler derives one from a redo change vector.
func NewRowId(dataObj, dba uint32, slot uint16) RowId {
	return RowId{DataObj: dataObj, Dba: dba, Slot: slot}
}

// String renders the canonical 18-character encoding of a rowid.
func (r RowId) String() string {
	var buf [18]byte
	// 6 base64-alphabet characters encode the 32-bit data object id (but
	// only 32 bits are meaningful, so the encoding uses 36 bits of space
	// padded with zero at the top — matches the original's 6-char object
	// segment).
	encode36(buf[0:6], uint64(r.DataObj))
	encode36(buf[6:12], uint64(r.Dba))
	encode18(buf[12:15], uint16(0)) // relative file number; unused, always zero here
	encode18(buf[15:18], r.Slot)
	return string(buf[:])
}

func encode36(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = rowIdAlphabet[v&0x3f]
		v >>= 6
	}
}

func encode18(dst []byte, v uint16) {
	vv := uint64(v)
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = rowIdAlphabet[vv&0x3f]
		vv >>= 6
	}
}

// ParseRowId parses the canonical 18-character rowid encoding produced by
// String. It returns an error if the string is not exactly 18 characters
// from the rowid alphabet.
func ParseRowId(s string) (RowId, error) {
	if len(s) != 18 {
		return RowId{}, fmt.Errorf("catalog: invalid rowid %q: want 18 characters, got %d", s, len(s))
	}
	decode := func(seg string) (uint64, error) {
		var v uint64
		for i := 0; i < len(seg); i++ {
			d := rowIdDecodeTable[seg[i]]
			if d < 0 {
				return 0, fmt.Errorf("catalog: invalid rowid %q: bad character %q", s, seg[i])
			}
			v = (v << 6) | uint64(d)
		}
		return v, nil
	}
	dataObj, err := decode(s[0:6])
	if err != nil {
		return RowId{}, err
	}
	dba, err := decode(s[6:12])
	if err != nil {
		return RowId{}, err
	}
	if _, err := decode(s[12:15]); err != nil {
		return RowId{}, err
	}
	slot, err := decode(s[15:18])
	if err != nil {
		return RowId{}, err
	}
	return RowId{DataObj: uint32(dataObj), Dba: uint32(dba), Slot: uint16(slot)}, nil
}

// IsZero reports whether r is the zero-value rowid (never a valid catalog
// row address, used as a sentinel).
func (r RowId) IsZero() bool {
	return r.DataObj == 0 && r.Dba == 0 && r.Slot == 0
}

// rowIdLess provides a stable total order over rowids. Store.All sorts by
// it, so every walk over a store (checkpoint serialization included) visits
// records in the same order.
func rowIdLess(a, b RowId) bool {
	if a.DataObj != b.DataObj {
		return a.DataObj < b.DataObj
	}
	if a.Dba != b.Dba {
		return a.Dba < b.Dba
	}
	return a.Slot < b.Slot
}

// mustParseRowId is a test/fixture helper; panics on malformed input since
// fixtures are static, literal strings, never runtime data.
func mustParseRowId(s string) RowId {
	r, err := ParseRowId(strings.TrimSpace(s))
	if err != nil {
		panic(err)
	}
	return r
}
