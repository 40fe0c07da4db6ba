// Package treemap: structural operations on the arena TreeMap.
//
// This file provides AddChild, FindByID, Ancestors and MoveNode plus the
// lock-held helpers they share. Writers hold t.mu for their full duration,
// readers hold its read side; record locks are taken one at a time beneath.

package treemap

import (
	"fmt"

	"github.com/katalvlaran/lvtree/internal/lineage"
	"github.com/katalvlaran/lvtree/observe"
)

// AddChild inserts child into the table, appends its id to parent's child
// ids and sets child's parent id. A nil parent means the root.
//
// child must be free: no parent, no children and not live in any table
// (ErrAlreadyAttached). parent must be the live entry for its id. RootAlias
// is never a valid child id (ErrReservedID). If child's id is already live the collision policy
// decides: RejectDuplicates fails with ErrDuplicateID; Overwrite detaches the
// live record, hands its children to child and links child under parent,
// refusing with ErrCycle when parent lies inside the replaced subtree.
//
// Complexity: O(1) amortized; O(depth(parent)) when overwriting.
func (t *TreeMap) AddChild(child, parent *NodeRecord) error {
	// Validate input
	if child == nil {
		return ErrNilRecord
	}
	if err := checkID(child.id); err != nil {
		return err
	}

	// Acquire write lock
	t.mu.Lock()
	defer t.mu.Unlock()

	// Resolve the default parent and verify membership
	if parent == nil {
		parent = t.nodes[RootAlias]
	} else if err := t.member(parent); err != nil {
		return err
	}

	// Take ownership before touching the table; give it back on refusal
	if !child.claim() {
		return fmt.Errorf("%w: %q", ErrAlreadyAttached, child.id)
	}
	if existing, live := t.nodes[child.id]; live {
		if err := t.replace(existing, child, parent); err != nil {
			child.unclaim()
			return err
		}
	}

	// Insert and link both directions
	t.nodes[child.id] = child
	parent.appendChild(child.id)
	child.setParent(parent.id)

	t.log.Debug("child added", "child", child.id, "parent", parent.id)
	t.obs.NodeAdded(observe.ReprArena)

	return nil
}

// FindByID returns the record stored under id. RootAlias resolves to the root.
// Absence is reported as ErrNodeNotFound.
//
// Complexity: O(1) average.
func (t *TreeMap) FindByID(id string) (*NodeRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.nodes[id]
	t.obs.Lookup(observe.ReprArena, ok)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return rec, nil
}

// Ancestors resolves rec's parent ids through the table: immediate parent
// first, root last. The root yields an empty slice.
//
// A parent id missing from the table is reported as ErrDanglingReference,
// together with the chain resolved so far.
//
// Complexity: O(depth(rec)).
func (t *TreeMap) Ancestors(rec *NodeRecord) ([]*NodeRecord, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := t.member(rec); err != nil {
		return nil, err
	}
	chain, err := t.ancestors(rec)
	if err != nil {
		t.log.Error("ancestor walk failed", "node", rec.id, "error", err)
	}

	return chain, err
}

// MoveNode relinks target under newParent, keeping its id and subtree.
//
// The move is refused with ErrCycle, leaving the table unchanged, when
// newParent is target or one of its descendants. Every lookup the move
// depends on is resolved before the first edit, so a dangling reference
// also leaves the table unchanged.
//
// Complexity: O(depth(newParent) + siblings(target)).
func (t *TreeMap) MoveNode(target, newParent *NodeRecord) error {
	if target == nil || newParent == nil {
		return ErrNilRecord
	}

	// Acquire write lock
	t.mu.Lock()
	defer t.mu.Unlock()

	// Both handles must be live entries
	if err := t.member(target); err != nil {
		return err
	}
	if err := t.member(newParent); err != nil {
		return err
	}

	// Cycle check: newParent must not sit inside target's subtree
	chain, err := t.ancestors(newParent)
	if err != nil {
		t.log.Error("ancestor walk failed", "node", newParent.id, "error", err)
		return err
	}
	if target == newParent || lineage.Contains(chain, target) {
		t.log.Warn("move refused: destination is inside the moved subtree",
			"target", target.id, "new_parent", newParent.id)
		t.obs.MoveRefused(observe.ReprArena)
		return fmt.Errorf("%w: %q is an ancestor of %q", ErrCycle, target.id, newParent.id)
	}

	// Resolve the old parent before the first edit
	old, err := t.parentOf(target)
	if err != nil {
		return err
	}

	// Detach, attach, rewrite the parent id
	if old != nil {
		old.removeChild(target.id)
	}
	newParent.appendChild(target.id)
	target.setParent(newParent.id)

	t.log.Debug("node moved", "target", target.id, "new_parent", newParent.id)
	t.obs.NodeMoved(observe.ReprArena)

	return nil
}

// replace validates and performs an Overwrite of existing by child under
// parent. Nothing is modified unless every check passes. Caller holds t.mu.
func (t *TreeMap) replace(existing, child, parent *NodeRecord) error {
	if t.policy != Overwrite || existing == t.nodes[RootAlias] {
		return fmt.Errorf("%w: %q", ErrDuplicateID, child.id)
	}

	chain, err := t.ancestors(parent)
	if err != nil {
		return err
	}
	if existing == parent || lineage.Contains(chain, existing) {
		return fmt.Errorf("%w: %q would be placed inside its own subtree", ErrCycle, child.id)
	}
	old, err := t.parentOf(existing)
	if err != nil {
		return err
	}

	if old != nil {
		old.removeChild(existing.id)
	}
	child.setChildren(existing.Children())
	existing.release()

	t.log.Debug("record overwritten", "id", child.id)

	return nil
}

// member fails with ErrNotInTree unless rec is the live entry for its id.
// Caller holds t.mu.
func (t *TreeMap) member(rec *NodeRecord) error {
	if t.nodes[rec.id] != rec {
		return fmt.Errorf("%w: %q", ErrNotInTree, rec.id)
	}
	return nil
}

// parentOf resolves rec's parent record; nil with no error for a root.
// Caller holds t.mu.
func (t *TreeMap) parentOf(rec *NodeRecord) (*NodeRecord, error) {
	pid, ok := rec.Parent()
	if !ok {
		return nil, nil
	}
	p, live := t.nodes[pid]
	if !live {
		return nil, fmt.Errorf("%w: parent %q of %q", ErrDanglingReference, pid, rec.id)
	}
	return p, nil
}

// ancestors walks parent ids up to the root. Caller holds t.mu.
func (t *TreeMap) ancestors(rec *NodeRecord) ([]*NodeRecord, error) {
	return lineage.Walk(rec, func(cur *NodeRecord) (*NodeRecord, bool, error) {
		p, err := t.parentOf(cur)
		if err != nil {
			return nil, false, err
		}
		return p, p != nil, nil
	})
}
