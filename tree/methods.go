// Package tree: structural operations on the pointer-graph Tree.
//
// This file provides AddChild, FindByID, Ancestors and MoveNode plus the
// lock-held helpers they share. Every exported method takes t.mu for its
// whole duration; node locks are taken one at a time underneath it.

package tree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/internal/lineage"
	"github.com/katalvlaran/lvtree/observe"
)

// AddChild appends child to parent's child sequence and points child's weak
// parent reference at parent. A nil parent means the root.
//
// child may carry its own subtree, including the root of another tree; it is
// grafted as-is. child must not have a live parent (ErrAlreadyAttached) and
// must not be this tree's root. parent must be linked under the root
// (ErrNotInTree). A child whose subtree already holds this tree's root or
// parent is refused with ErrCycle.
//
// Complexity: O(depth(parent) + size(child's subtree)).
func (t *Tree) AddChild(child, parent *Node) error {
	// Validate input
	if child == nil {
		return ErrNilNode
	}

	// Acquire tree lock for the whole edit
	t.mu.Lock()
	defer t.mu.Unlock()

	// Resolve the default parent and make sure it hangs under our root
	if parent == nil {
		parent = t.root
	}
	if _, err := t.locate(parent); err != nil {
		return err
	}
	if p, _ := child.parentRef(); p != nil || child == t.root {
		return fmt.Errorf("%w: %q", ErrAlreadyAttached, child.id)
	}

	// A grafted subtree must not already reach back into this tree
	if reaches(child, t.root, parent) {
		t.log.Warn("add refused: child subtree contains this tree",
			"child", child.id, "parent", parent.id)
		return fmt.Errorf("%w: subtree of %q contains %q", ErrCycle, child.id, t.root.id)
	}

	// Link both directions
	parent.appendChild(child)
	child.setParent(parent)

	t.log.Debug("child added", "child", child.id, "parent", parent.id)
	t.obs.NodeAdded(observe.ReprPointer)

	return nil
}

// FindByID searches breadth-first from the root and returns the first node
// whose id matches. Absence is reported as ErrNodeNotFound.
//
// Complexity: O(n) time, O(width) queue space.
func (t *Tree) FindByID(id string) (*Node, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Breadth-first, stop at the first match
	var found *Node
	t.walk(func(n *Node) bool {
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	t.obs.Lookup(observe.ReprPointer, found != nil)
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return found, nil
}

// Ancestors returns n's parent chain: immediate parent first, root last.
// The root yields an empty slice; a node not linked under the root yields
// ErrNotInTree.
//
// If a parent reference no longer resolves, the chain collected so far is
// returned together with ErrParentReleased. Callers that prefer a truncated
// chain can ignore that error with errors.Is.
//
// Complexity: O(depth(n)).
func (t *Tree) Ancestors(n *Node) ([]*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	chain, err := t.locate(n)
	if errors.Is(err, ErrParentReleased) {
		t.log.Error("ancestor walk hit a released parent", "node", n.id, "error", err)
	}

	return chain, err
}

// MoveNode relinks target under newParent, keeping target's id and subtree.
//
// The move is refused with ErrCycle, leaving the tree unchanged, when
// newParent is target itself or lies inside target's subtree. Both nodes
// must be linked under the root (ErrNotInTree).
//
// Detach from the old parent, attach to the new one and the back-reference
// rewrite all happen under the tree lock, so no caller observes target with
// zero or two parents.
//
// Complexity: O(depth(newParent) + depth(target) + siblings(target)).
func (t *Tree) MoveNode(target, newParent *Node) error {
	if target == nil || newParent == nil {
		return ErrNilNode
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Cycle check: newParent must not sit inside target's subtree
	chain, err := t.locate(newParent)
	if err != nil {
		return err
	}
	if target == newParent || lineage.Contains(chain, target) {
		t.log.Warn("move refused: destination is inside the moved subtree",
			"target", target.id, "new_parent", newParent.id)
		t.obs.MoveRefused(observe.ReprPointer)
		return fmt.Errorf("%w: %q is an ancestor of %q", ErrCycle, target.id, newParent.id)
	}
	if _, err = t.locate(target); err != nil {
		return err
	}

	// Detach, attach, rewrite the back-reference
	if old, _ := target.parentRef(); old != nil {
		old.removeChild(target)
	}
	newParent.appendChild(target)
	target.setParent(newParent)

	t.log.Debug("node moved", "target", target.id, "new_parent", newParent.id)
	t.obs.NodeMoved(observe.ReprPointer)

	return nil
}

// ancestors walks parent references up to the root. Caller holds t.mu.
func (t *Tree) ancestors(n *Node) ([]*Node, error) {
	return lineage.Walk(n, func(cur *Node) (*Node, bool, error) {
		if cur == t.root {
			return nil, false, nil
		}
		p, linked := cur.parentRef()
		if !linked {
			return nil, false, nil
		}
		if p == nil {
			return nil, false, fmt.Errorf("%w: parent of %q", ErrParentReleased, cur.id)
		}
		return p, true, nil
	})
}

// locate returns n's ancestor chain and fails with ErrNotInTree unless the
// chain ends at this tree's root. Caller holds t.mu.
func (t *Tree) locate(n *Node) ([]*Node, error) {
	chain, err := t.ancestors(n)
	if err != nil {
		return chain, err
	}
	if n != t.root && (len(chain) == 0 || chain[len(chain)-1] != t.root) {
		return chain, fmt.Errorf("%w: %q", ErrNotInTree, n.id)
	}

	return chain, nil
}

// reaches reports whether any of targets lies in the subtree rooted at n,
// n included. Nodes are visited once, so a corrupted shape cannot loop.
func reaches(n *Node, targets ...*Node) bool {
	seen := make(map[*Node]struct{})
	queue := []*Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, dup := seen[cur]; dup {
			continue
		}
		seen[cur] = struct{}{}
		for _, tg := range targets {
			if cur == tg {
				return true
			}
		}
		queue = append(queue, cur.Children()...)
	}

	return false
}

// walk visits nodes breadth-first from the root until visit returns false.
// Caller holds t.mu.
func (t *Tree) walk(visit func(n *Node) bool) {
	queue := []*Node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !visit(n) {
			return
		}
		queue = append(queue, n.Children()...)
	}
}
