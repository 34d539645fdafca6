package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeMatchPercentAndUnderscore(t *testing.T) {
	assert.True(t, likeMatch("%", "ANYTHING"))
	assert.True(t, likeMatch("EMP%", "EMPLOYEES"))
	assert.False(t, likeMatch("EMP%", "DEPARTMENTS"))
	assert.True(t, likeMatch("A_C", "ABC"))
	assert.False(t, likeMatch("A_C", "ABBC"))
	assert.True(t, likeMatch("", ""))
	assert.False(t, likeMatch("", "X"))
}

func TestLikeMatchMixedWildcards(t *testing.T) {
	assert.True(t, likeMatch("%_B%", "AB"))
	assert.True(t, likeMatch("S%$", "SYS$"))
	assert.False(t, likeMatch("S%$", "SYS"))
}

func TestFilterListMatchesReturnsLastMatchingIndex(t *testing.T) {
	fl := FilterList{
		{OwnerPattern: "%", TablePattern: "%"},
		{OwnerPattern: "HR", TablePattern: "EMP%"},
	}

	idx, ok := fl.Matches("HR", "EMPLOYEES")
	assert.True(t, ok)
	assert.Equal(t, 1, idx, "a later, more specific entry must win over an earlier catch-all")
}

func TestFilterListMatchesNoneReturnsFalse(t *testing.T) {
	fl := FilterList{
		{OwnerPattern: "HR", TablePattern: "EMP%"},
	}

	_, ok := fl.Matches("FINANCE", "INVOICES")
	assert.False(t, ok)
}
