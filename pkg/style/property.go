// Package style implements the layered, state-dependent style resolution
// engine: per-attribute properties that vary with interaction state, style
// layers bundling one property per visual slot, an override-wins merge, a
// precedence resolver over an ordered layer stack, and resolved snapshots
// with linear interpolation for animated transitions.
package style

import (
	"fmt"

	"github.com/HrX03/fluent-ui/pkg/states"
)

// MatchPolicy controls how a rule's state mask is compared against the
// queried state set.
type MatchPolicy int

const (
	// MatchSubset matches a rule when every flag in the rule's mask is set
	// in the queried states. This is the default: a rule for Hovering also
	// matches Hovering|Focused.
	MatchSubset MatchPolicy = iota
	// MatchExact matches a rule only when the queried states equal the
	// rule's mask exactly.
	MatchExact
)

// String returns a human-readable representation of the match policy.
func (p MatchPolicy) String() string {
	switch p {
	case MatchSubset:
		return "subset"
	case MatchExact:
		return "exact"
	default:
		return fmt.Sprintf("MatchPolicy(%d)", int(p))
	}
}

type rule[T any] struct {
	when  states.States
	value T
}

// Property is one visual attribute as a pure function of interaction state.
//
// A property holds an optional default plus ordered (states, value) rules.
// Resolve evaluates rules in registration order; the first matching rule
// wins, falling back to the default. A property with neither a matching
// rule nor a default leaves the attribute unresolved for that query, which
// lets a lower-precedence layer supply it.
//
// Properties are pure and must not be mutated after first use. Build them
// up front with Fixed and When, then share freely.
type Property[T any] struct {
	rules      []rule[T]
	def        T
	hasDefault bool
	policy     MatchPolicy
}

// Fixed returns a property that resolves to value in every state.
func Fixed[T any](value T) *Property[T] {
	return &Property[T]{def: value, hasDefault: true}
}

// RulesOnly returns a property with no default. It resolves only for state
// sets matched by a registered rule.
func RulesOnly[T any]() *Property[T] {
	return &Property[T]{}
}

// When appends a rule mapping the given state mask to value and returns the
// property for chaining. Rules are evaluated in registration order with
// first-match-wins, so register the most specific masks first.
func (p *Property[T]) When(when states.States, value T) *Property[T] {
	p.rules = append(p.rules, rule[T]{when: when, value: value})
	return p
}

// WithPolicy sets the rule matching policy and returns the property.
func (p *Property[T]) WithPolicy(policy MatchPolicy) *Property[T] {
	p.policy = policy
	return p
}

// Resolve evaluates the property for the queried state set. The boolean
// reports whether any rule or default supplied a value.
func (p *Property[T]) Resolve(s states.States) (T, bool) {
	for _, r := range p.rules {
		if p.matches(r.when, s) {
			return r.value, true
		}
	}
	if p.hasDefault {
		return p.def, true
	}
	var zero T
	return zero, false
}

func (p *Property[T]) matches(when, queried states.States) bool {
	if p.policy == MatchExact {
		return when == queried
	}
	return when.IsSubsetOf(queried)
}
