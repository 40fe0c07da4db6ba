// Package treemap: read-side queries on the arena TreeMap.
//
// This file provides Len, IDs, Depth and the read-locked View. All of them
// run on the table's read lock and may proceed concurrently.

package treemap

import "fmt"

// Len returns the number of distinct records; the RootAlias key is not counted.
func (t *TreeMap) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.size()
}

// size counts distinct records. A root whose id is RootAlias occupies one
// key instead of two. Caller holds t.mu.
func (t *TreeMap) size() int {
	if t.nodes[RootAlias].id == RootAlias {
		return len(t.nodes)
	}
	return len(t.nodes) - 1
}

// IDs returns the ids reachable from the root in breadth-first order, root
// first and siblings in child order. Records detached by an Overwrite are
// not reachable and so not listed. A child id that does not resolve is
// logged and skipped.
func (t *TreeMap) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	// Breadth-first from the root, resolving child ids through the table
	root := t.nodes[RootAlias]
	ids := make([]string, 0, t.size())
	queue := []*NodeRecord{root}
	for len(queue) > 0 {
		rec := queue[0]
		queue = queue[1:]
		ids = append(ids, rec.id)
		for _, cid := range rec.Children() {
			c, ok := t.nodes[cid]
			if !ok {
				t.log.Error("dangling child id", "parent", rec.id, "child", cid)
				continue
			}
			queue = append(queue, c)
		}
	}

	return ids
}

// Depth returns rec's distance from the root (0 for the root).
func (t *TreeMap) Depth(rec *NodeRecord) (int, error) {
	if rec == nil {
		return 0, ErrNilRecord
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := t.member(rec); err != nil {
		return 0, err
	}
	chain, err := t.ancestors(rec)
	if err != nil {
		return 0, err
	}

	return len(chain), nil
}

// View is a read-only window onto the table, valid only inside TreeMap.View.
type View struct {
	t *TreeMap
}

// Root returns the root record.
func (v View) Root() *NodeRecord {
	return v.t.nodes[RootAlias]
}

// Get resolves id; a miss is ErrDanglingReference because callers reach ids
// through links they already hold.
func (v View) Get(id string) (*NodeRecord, error) {
	rec, ok := v.t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDanglingReference, id)
	}
	return rec, nil
}

// View runs fn under the read lock so the table cannot change while fn walks
// it. fn must not call TreeMap methods: a writer queued behind the held read
// lock would deadlock the nested one. The error from fn is returned.
func (t *TreeMap) View(fn func(v View) error) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return fn(View{t: t})
}
