package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeStrings_PreservesFirstSeenOrder(t *testing.T) {
	in := []string{"c", "a", "b", "a", "c", "d"}
	assert.Equal(t, []string{"c", "a", "b", "d"}, DedupeStrings(in))
}

func TestDedupe_Idempotent(t *testing.T) {
	in := []string{"x", "y", "x", "z", "y"}
	once := DedupeStrings(in)
	twice := DedupeStrings(once)
	assert.Equal(t, once, twice)
}

func TestDedupe_CustomKey(t *testing.T) {
	in := []string{"Zaytoon", "zaytoon", " ZAYTOON ", "Lucali"}
	out := Dedupe(in, normalizeName)
	assert.Equal(t, []string{"Zaytoon", "Lucali"}, out)
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, DedupeStrings(nil))
	assert.Empty(t, DedupeStrings([]string{}))
}
