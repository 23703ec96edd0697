package theme

import (
	"github.com/HrX03/fluent-ui/pkg/scope"
	"github.com/HrX03/fluent-ui/pkg/style"
)

type themeKey struct{}
type styleLayerKey struct{}

// Publish installs theme data for s's subtree. Descendants read it with
// [Of] or [MaybeOf]; the nearest publication wins.
func Publish(s *scope.Scope, data *ThemeData) {
	s.Publish(themeKey{}, data)
}

// Of returns the nearest published theme data.
//
// A chain with no theme root at all is a fatal configuration error: the
// default layer cannot be built without the root's brightness and accent,
// so Of panics with a descriptive message rather than silently defaulting.
// Use [MaybeOf] where absence is tolerable.
func Of(s *scope.Scope) *ThemeData {
	data := MaybeOf(s)
	if data == nil {
		panic("theme: no theme published in scope chain; publish a ThemeData at the root before resolving styles")
	}
	return data
}

// MaybeOf returns the nearest published theme data, or nil if no ancestor
// published one.
func MaybeOf(s *scope.Scope) *ThemeData {
	v, ok := s.Lookup(themeKey{})
	if !ok {
		return nil
	}
	if data, ok := v.(*ThemeData); ok {
		return data
	}
	return nil
}

// PublishStyle installs a theme style layer for s's subtree. The layer is
// shared by reference with every descendant and must not be mutated after
// publication; publish a new layer instead.
func PublishStyle(s *scope.Scope, layer *style.Style) {
	s.Publish(styleLayerKey{}, layer)
}

// StyleOf composes the effective theme layer for the given scope.
//
// Nested theme scopes merge from the root down to the nearest ancestor, so
// the nearest publication wins per attribute slot while farther ancestors
// still supply the slots it leaves unset. Returns nil when no ancestor
// published a style layer.
func StyleOf(s *scope.Scope) *style.Style {
	published := s.Collect(styleLayerKey{})
	if len(published) == 0 {
		return nil
	}
	var merged *style.Style
	for _, v := range published {
		layer, ok := v.(*style.Style)
		if !ok {
			continue
		}
		merged = style.Merge(merged, layer)
	}
	return merged
}
