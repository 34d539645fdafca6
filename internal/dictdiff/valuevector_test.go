package dictdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueVectorSetColumnTracksPresence(t *testing.T) {
	v := NewValueVector()
	assert.False(t, v.IsSet("NAME"))

	v.SetColumn("NAME", TypeVarchar, []byte("OLD"), []byte("NEW"))
	assert.True(t, v.IsSet("NAME"))

	before, ok := v.Before("NAME")
	assert.True(t, ok)
	assert.Equal(t, []byte("OLD"), before)

	after, ok := v.After("NAME")
	assert.True(t, ok)
	assert.Equal(t, []byte("NEW"), after)
}

func TestValueVectorPresentButNullColumn(t *testing.T) {
	v := NewValueVector()
	v.SetColumn("SPARE1", TypeNumber, nil, nil)

	assert.True(t, v.IsSet("SPARE1"), "a present-but-null column is still set")
	_, ok := v.Before("SPARE1")
	assert.False(t, ok)
	_, ok = v.After("SPARE1")
	assert.False(t, ok)
}

func TestValueVectorColumnsListsEverySetColumn(t *testing.T) {
	v := NewValueVector()
	v.SetColumn("USER#", TypeNumber, nil, []byte("1"))
	v.SetColumn("NAME", TypeVarchar, nil, []byte("SYS"))

	cols := v.Columns()
	assert.ElementsMatch(t, []string{"USER#", "NAME"}, cols)
}

func TestValueVectorIsUnsetForUnknownColumn(t *testing.T) {
	v := NewValueVector()
	assert.False(t, v.IsSet("DOES_NOT_EXIST"))
}

func TestValueVectorSourceTypeRoundTrips(t *testing.T) {
	v := NewValueVector()
	v.SetColumn("TYPE#", TypeNumber, nil, []byte("2"))

	srcType, ok := v.SourceType("TYPE#")
	assert.True(t, ok)
	assert.Equal(t, TypeNumber, srcType)

	_, ok = v.SourceType("DOES_NOT_EXIST")
	assert.False(t, ok)
}

func TestValueVectorColumnProjectsFullImage(t *testing.T) {
	v := NewValueVector()
	v.SetColumn("NAME", TypeVarchar, []byte("OLD"), []byte("NEW"))

	img, ok := v.Column("NAME")
	assert.True(t, ok)
	assert.Equal(t, TypeVarchar, img.SourceType)
	assert.True(t, img.BeforePresent)
	assert.Equal(t, []byte("OLD"), img.Before)
	assert.True(t, img.AfterPresent)
	assert.Equal(t, []byte("NEW"), img.After)
}

func TestValueVectorColumnReportsAbsentWhenNeverSet(t *testing.T) {
	v := NewValueVector()
	_, ok := v.Column("DOES_NOT_EXIST")
	assert.False(t, ok)
}

func TestValueVectorColumnReportsPresentWithNoImages(t *testing.T) {
	v := NewValueVector()
	v.SetColumn("SPARE1", TypeNumber, nil, nil)

	img, ok := v.Column("SPARE1")
	assert.True(t, ok, "SetColumn was called, so the column is present even with no images")
	assert.False(t, img.BeforePresent)
	assert.False(t, img.AfterPresent)
}
