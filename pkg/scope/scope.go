// Package scope provides tree-scoped value lookup: an ancestor publishes a
// value into its subtree's scope and any descendant reads the nearest
// published value by walking the chain upward.
//
// Scopes are explicit objects threaded through construction; there is no
// global registry. A scope lives exactly as long as the subtree it was
// created for, and published values are shared by reference downward, never
// mutated in place.
package scope

// Scope is one node in an ancestor chain of published values.
//
// Lookup cost is O(chain depth). Within a single scope the last Publish
// for a key wins; across the chain the nearest publishing ancestor wins.
type Scope struct {
	parent *Scope
	values map[any]any
}

// Root creates a scope with no parent.
func Root() *Scope {
	return &Scope{}
}

// Child creates a scope whose lookups fall through to s. Values published
// on the child shadow the parent's for the child's subtree only.
func (s *Scope) Child() *Scope {
	return &Scope{parent: s}
}

// Publish installs a value under key for this scope's subtree, replacing
// any value previously published under the same key on this scope.
func (s *Scope) Publish(key, value any) {
	if s.values == nil {
		s.values = make(map[any]any)
	}
	s.values[key] = value
}

// Lookup returns the value published under key by the nearest scope,
// starting at s and walking toward the root. The boolean reports whether
// any scope in the chain published the key.
func (s *Scope) Lookup(key any) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.values == nil {
			continue
		}
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Collect returns every value published under key along the chain, ordered
// root first and nearest scope last. Callers composing layered values merge
// the slice in order so the nearest publication wins per slot.
func (s *Scope) Collect(key any) []any {
	var reversed []any
	for cur := s; cur != nil; cur = cur.parent {
		if cur.values == nil {
			continue
		}
		if v, ok := cur.values[key]; ok {
			reversed = append(reversed, v)
		}
	}
	// Walked nearest-to-root; flip to root-first.
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}
