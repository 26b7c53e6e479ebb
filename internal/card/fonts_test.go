package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownFamilies(t *testing.T) {
	reg := NewFontRegistry()
	for _, family := range reg.Families() {
		face, substituted := reg.Resolve(family, 24)
		require.NotNil(t, face, "family %q", family)
		assert.False(t, substituted, "family %q should resolve directly", family)
	}
}

func TestResolveAliases(t *testing.T) {
	reg := NewFontRegistry()
	for _, alias := range []string{"", "system", "default", "Mono", "BOLD"} {
		face, substituted := reg.Resolve(alias, 24)
		require.NotNil(t, face)
		assert.False(t, substituted, "alias %q is not a substitution", alias)
	}
}

// Unknown families substitute the default and report it; lookup never fails.
func TestResolveUnknownFamilySubstitutes(t *testing.T) {
	reg := NewFontRegistry()
	face, substituted := reg.Resolve("papyrus", 24)
	require.NotNil(t, face)
	assert.True(t, substituted)

	def, _ := reg.Resolve(DefaultFontFamily, 24)
	assert.True(t, face == def, "substituted face should be the cached default face")
}

func TestFaceCacheReuse(t *testing.T) {
	reg := NewFontRegistry()
	a, _ := reg.Resolve("go", 18)
	b, _ := reg.Resolve("go", 18)
	c, _ := reg.Resolve("go", 19)
	assert.True(t, a == b, "same family and size should share one face")
	assert.False(t, a == c, "different sizes need different faces")
}
