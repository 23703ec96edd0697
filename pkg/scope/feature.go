package scope

// Feature is a named binary toggle an ancestor publishes to gate a visual
// treatment for its whole subtree, without threading a parameter through
// every construction call.
//
// A feature that no ancestor published is enabled: publication only ever
// restricts. Declare features as package-level variables:
//
//	var BlurEffects = scope.NewFeature("blur-effects")
type Feature struct {
	name string
}

// featureKey keys a feature's publications in a scope chain. Using the
// Feature pointer itself would tie lookups to a specific variable; the
// dedicated key type keeps each Feature value independent.
type featureKey struct{ f *Feature }

// NewFeature declares a feature toggle with a diagnostic name.
func NewFeature(name string) *Feature {
	return &Feature{name: name}
}

// Name returns the feature's diagnostic name.
func (f *Feature) Name() string {
	return f.name
}

// Publish installs the toggle's value for s's subtree.
func (f *Feature) Publish(s *Scope, enabled bool) {
	s.Publish(featureKey{f}, enabled)
}

// Lookup returns the nearest published value for the toggle. The boolean
// reports whether any ancestor published it at all.
func (f *Feature) Lookup(s *Scope) (enabled, published bool) {
	v, ok := s.Lookup(featureKey{f})
	if !ok {
		return false, false
	}
	return v.(bool), true
}

// EnabledIn reports whether the feature is on for the given scope,
// defaulting to enabled when no ancestor published the toggle.
func (f *Feature) EnabledIn(s *Scope) bool {
	enabled, published := f.Lookup(s)
	if !published {
		return true
	}
	return enabled
}
