// Package tree: read-side queries on the pointer-graph Tree.
//
// This file provides Len, IDs, Depth and View. Each holds the tree lock
// while it walks, so results reflect one consistent shape.

package tree

// Len returns the number of nodes reachable from the root, root included.
// Complexity: O(n).
func (t *Tree) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Count every node reachable from the root
	count := 0
	t.walk(func(*Node) bool {
		count++
		return true
	})

	return count
}

// IDs returns every reachable id in breadth-first order, root first and
// siblings in child order. Pair it with payload.Store.Retain to drop payload
// for nodes that are no longer linked.
func (t *Tree) IDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var ids []string
	t.walk(func(n *Node) bool {
		ids = append(ids, n.id)
		return true
	})

	return ids
}

// Depth returns n's distance from the root (0 for the root).
// n must be linked under the root.
func (t *Tree) Depth(n *Node) (int, error) {
	if n == nil {
		return 0, ErrNilNode
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	chain, err := t.locate(n)
	if err != nil {
		return 0, err
	}

	return len(chain), nil
}

// View runs fn with the tree lock held, so the structure reachable from root
// cannot change while fn reads it through Node accessors. fn must not call
// any Tree method (the lock is not reentrant). The error from fn is returned.
func (t *Tree) View(fn func(root *Node) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return fn(t.root)
}
