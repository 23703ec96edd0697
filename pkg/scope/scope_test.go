package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testKey struct{ name string }

// TestScope_NearestWins verifies that lookups return the nearest publishing
// ancestor's value.
func TestScope_NearestWins(t *testing.T) {
	root := Root()
	mid := root.Child()
	leaf := mid.Child()

	key := testKey{"padding"}
	root.Publish(key, 8)
	mid.Publish(key, 16)

	v, ok := leaf.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, 16, v)

	v, _ = root.Lookup(key)
	assert.Equal(t, 8, v, "ancestor sees its own value, not a descendant's")
}

// TestScope_InheritsThroughUnpublishedLevels verifies that levels without a
// publication fall through to the nearest ancestor.
func TestScope_InheritsThroughUnpublishedLevels(t *testing.T) {
	root := Root()
	leaf := root.Child().Child().Child()

	key := testKey{"color"}
	root.Publish(key, "red")

	v, ok := leaf.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, "red", v)
}

// TestScope_LookupAbsent verifies the absent case.
func TestScope_LookupAbsent(t *testing.T) {
	_, ok := Root().Child().Lookup(testKey{"missing"})
	assert.False(t, ok)
}

// TestScope_RepublishSameScope verifies last-writer-wins within one scope.
func TestScope_RepublishSameScope(t *testing.T) {
	s := Root()
	key := testKey{"k"}
	s.Publish(key, 1)
	s.Publish(key, 2)

	v, _ := s.Lookup(key)
	assert.Equal(t, 2, v)
}

// TestScope_SiblingsIsolated verifies a publication on one child does not
// leak to its sibling.
func TestScope_SiblingsIsolated(t *testing.T) {
	root := Root()
	a := root.Child()
	b := root.Child()

	key := testKey{"k"}
	a.Publish(key, "a-only")

	_, ok := b.Lookup(key)
	assert.False(t, ok)
}

// TestScope_CollectRootFirst verifies the root-first ordering used to
// compose layered publications.
func TestScope_CollectRootFirst(t *testing.T) {
	root := Root()
	mid := root.Child()
	leaf := mid.Child()

	key := testKey{"layer"}
	root.Publish(key, "outer")
	leaf.Publish(key, "inner")

	assert.Equal(t, []any{"outer", "inner"}, leaf.Collect(key))
	assert.Empty(t, mid.Collect(testKey{"missing"}))
}

// TestFeature_DefaultEnabled verifies that a feature no ancestor published
// reads as enabled.
func TestFeature_DefaultEnabled(t *testing.T) {
	f := NewFeature("expensive-effect")
	s := Root().Child()

	_, published := f.Lookup(s)
	assert.False(t, published)
	assert.True(t, f.EnabledIn(s), "unpublished feature defaults to enabled")
}

// TestFeature_PublishedDisabled verifies an ancestor can switch a feature
// off for its whole subtree.
func TestFeature_PublishedDisabled(t *testing.T) {
	f := NewFeature("expensive-effect")
	root := Root()
	leaf := root.Child().Child()

	f.Publish(root, false)
	assert.False(t, f.EnabledIn(leaf))

	enabled, published := f.Lookup(leaf)
	assert.True(t, published)
	assert.False(t, enabled)
}

// TestFeature_NearestPublicationWins verifies a nearer ancestor overrides
// an outer publication.
func TestFeature_NearestPublicationWins(t *testing.T) {
	f := NewFeature("expensive-effect")
	root := Root()
	mid := root.Child()
	leaf := mid.Child()

	f.Publish(root, false)
	f.Publish(mid, true)

	assert.True(t, f.EnabledIn(leaf))
	assert.False(t, f.EnabledIn(root))
}

// TestFeature_IndependentFeatures verifies two features with the same name
// are still distinct toggles.
func TestFeature_IndependentFeatures(t *testing.T) {
	f1 := NewFeature("same-name")
	f2 := NewFeature("same-name")
	s := Root()

	f1.Publish(s, false)
	assert.False(t, f1.EnabledIn(s))
	assert.True(t, f2.EnabledIn(s), "publication keys on the feature identity, not its name")
}
