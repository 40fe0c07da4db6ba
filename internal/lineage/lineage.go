// Package lineage holds the ancestor-walk logic shared by the pointer-graph
// and arena trees. Callers supply the parent-resolution step; lineage owns
// the ordering and the cycle guard.
package lineage

import (
	"errors"
	"fmt"
)

// ErrCycle indicates a parent chain revisited a node. A well-formed tree
// never produces it; seeing it means the structure was corrupted.
var ErrCycle = errors.New("lineage: parent chain contains a cycle")

// ParentFunc resolves the parent of n.
// ok == false means n has no parent (n is a root).
// A non-nil error aborts the walk.
type ParentFunc[T any] func(n T) (parent T, ok bool, err error)

// Walk collects the ancestors of start: immediate parent first, root last.
// The root itself yields an empty, non-nil slice.
//
// When parent fails, Walk returns the chain collected so far together with
// the error, so callers can decide between truncation and failure.
//
// Complexity: O(d) time and space, d = depth of start.
func Walk[T comparable](start T, parent ParentFunc[T]) ([]T, error) {
	chain := make([]T, 0, 8)
	seen := map[T]struct{}{start: {}}

	cur := start
	for {
		p, ok, err := parent(cur)
		if err != nil {
			return chain, err
		}
		if !ok {
			return chain, nil
		}
		if _, dup := seen[p]; dup {
			return chain, fmt.Errorf("%w: revisited %v", ErrCycle, p)
		}
		seen[p] = struct{}{}
		chain = append(chain, p)
		cur = p
	}
}

// Contains reports whether v occurs in chain.
func Contains[T comparable](chain []T, v T) bool {
	for _, c := range chain {
		if c == v {
			return true
		}
	}

	return false
}
