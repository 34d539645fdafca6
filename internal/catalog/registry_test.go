package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryStartsClean(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Dirty())
}

func TestRegistryMarkDirtySetsAggregateFlag(t *testing.T) {
	r := NewRegistry()
	rec := &UserRow{RowID: mustParseRowId("AAAAAAAAAAAAAAAAAA"), UserID: 1}
	r.User.Add(rec)
	r.User.MarkTouched(rec)
	r.MarkDirty()

	assert.True(t, r.Dirty())
	assert.True(t, r.User.IsTouched(rec.RowID))
}

func TestRegistryClearDirtyResetsEveryTable(t *testing.T) {
	r := NewRegistry()

	userRec := &UserRow{RowID: NewRowId(1, 1, 1), UserID: 1}
	r.User.Add(userRec)
	r.User.MarkTouched(userRec)

	objRec := &ObjRow{RowID: NewRowId(1, 1, 2), ObjID: 1}
	r.Obj.Add(objRec)
	r.Obj.MarkTouched(objRec)

	r.MarkDirty()
	require := assert.New(t)
	require.True(r.Dirty())

	r.ClearDirty()
	require.False(r.Dirty())
	require.False(r.User.IsTouched(userRec.RowID))
	require.False(r.Obj.IsTouched(objRec.RowID))
}
