// Package states defines the interaction flag set consumed by the style
// resolution engine. A States value describes a control's live interaction
// condition: whether it is disabled, hovered, pressed, or focused.
//
// States values are immutable bitmasks. Every transition produces a new
// value; With and Without return copies.
package states

import "strings"

// States is a set of interaction flags.
//
// Disabled and the pointer-derived flags are not mutually exclusive at the
// data level. A disabled control may still record hovering or pressing bits;
// the style rules registered for the disabled flag decide the rendered
// treatment, and consumers must give disabled the highest visual priority.
type States uint8

const (
	// Disabled is set while the control has no active callback.
	Disabled States = 1 << iota
	// Hovering is set while a pointer is over the control.
	Hovering
	// Pressing is set while a pointer or long-press holds the control down.
	Pressing
	// Focused is set while the control owns keyboard focus. It is tracked
	// independently of the pointer-derived flags.
	Focused
)

// None is the empty state set.
const None States = 0

// Has reports whether every flag in other is set.
func (s States) Has(other States) bool {
	return s&other == other
}

// IsSubsetOf reports whether every flag in s is also set in other.
func (s States) IsSubsetOf(other States) bool {
	return s&other == s
}

// With returns a copy of the set with the given flags added.
func (s States) With(flags States) States {
	return s | flags
}

// Without returns a copy of the set with the given flags removed.
func (s States) Without(flags States) States {
	return s &^ flags
}

// IsDisabled reports whether the Disabled flag is set.
func (s States) IsDisabled() bool { return s.Has(Disabled) }

// IsHovering reports whether the Hovering flag is set.
func (s States) IsHovering() bool { return s.Has(Hovering) }

// IsPressing reports whether the Pressing flag is set.
func (s States) IsPressing() bool { return s.Has(Pressing) }

// IsFocused reports whether the Focused flag is set.
func (s States) IsFocused() bool { return s.Has(Focused) }

// String returns a human-readable representation such as
// "hovering|pressing", or "none" for the empty set.
func (s States) String() string {
	if s == None {
		return "none"
	}
	var parts []string
	if s.Has(Disabled) {
		parts = append(parts, "disabled")
	}
	if s.Has(Hovering) {
		parts = append(parts, "hovering")
	}
	if s.Has(Pressing) {
		parts = append(parts, "pressing")
	}
	if s.Has(Focused) {
		parts = append(parts, "focused")
	}
	return strings.Join(parts, "|")
}
