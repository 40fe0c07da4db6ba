package record

import (
	"fmt"

	"github.com/katalvlaran/lvtree/payload"
	"github.com/katalvlaran/lvtree/tree"
	"github.com/katalvlaran/lvtree/treemap"
)

// payloads buffers Data per id until the import has succeeded.
// Among records sharing an id the last one carrying Data wins; a record
// without Data leaves an earlier value in place.
type payloads map[string]any

func (p payloads) note(r Record) {
	if r.Data != nil {
		p[r.ID] = r.Data
	}
}

func (p payloads) flush(assoc payload.Associator) {
	if assoc == nil {
		return
	}
	for id, v := range p {
		assoc.Put(id, v)
	}
}

// ImportTree builds a pointer tree from rec in depth-first pre-order,
// keeping child order. rec is validated before any node is created, and
// payloads reach assoc only once the whole tree is built. Duplicate ids
// produce distinct nodes; FindByID returns the first in breadth-first order.
// Their payload is the last Data given for the id.
func ImportTree(rec Record, assoc payload.Associator, opts ...tree.Option) (*tree.Tree, error) {
	if err := Validate(rec); err != nil {
		return nil, err
	}

	root, err := tree.NewNodeWithID(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("record: import root %q: %w", rec.ID, err)
	}
	t := tree.New(root, opts...)
	buf := payloads{}
	buf.note(rec)

	type frame struct {
		rec    Record
		parent *tree.Node
	}
	stack := make([]frame, 0, len(rec.Children))
	for i := len(rec.Children) - 1; i >= 0; i-- {
		stack = append(stack, frame{rec.Children[i], root})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, err := tree.NewNodeWithID(f.rec.ID)
		if err != nil {
			return nil, fmt.Errorf("record: import %q: %w", f.rec.ID, err)
		}
		if err := t.AddChild(n, f.parent); err != nil {
			return nil, fmt.Errorf("record: import %q: %w", f.rec.ID, err)
		}
		buf.note(f.rec)
		for i := len(f.rec.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.rec.Children[i], n})
		}
	}

	buf.flush(assoc)
	return t, nil
}

// ImportTreeMap builds an arena tree from rec breadth-first, keeping child
// order. The table uses the Overwrite collision policy so a repeated id
// replaces the record stored under it; children queued under the earlier
// record follow the live one. An id repeating the root's or one of its own
// ancestors' is refused by the table and aborts the import, as is a child
// id equal to treemap.RootAlias. The top-level record may carry that id.
//
// rec is validated first and payloads reach assoc only on success.
func ImportTreeMap(rec Record, assoc payload.Associator, opts ...treemap.Option) (*treemap.TreeMap, error) {
	if err := Validate(rec); err != nil {
		return nil, err
	}

	root, err := treemap.NewRecordWithID(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("record: import root %q: %w", rec.ID, err)
	}
	opts = append([]treemap.Option{treemap.WithCapacity(rec.Len() + 1)}, opts...)
	opts = append(opts, treemap.WithCollisionPolicy(treemap.Overwrite))
	tm := treemap.New(root, opts...)
	buf := payloads{}
	buf.note(rec)

	type item struct {
		rec      Record
		parentID string
	}
	queue := make([]item, 0, len(rec.Children))
	for _, c := range rec.Children {
		queue = append(queue, item{c, rec.ID})
	}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		parent, err := tm.FindByID(it.parentID)
		if err != nil {
			return nil, fmt.Errorf("record: import %q: %w", it.rec.ID, err)
		}
		child, err := treemap.NewRecordWithID(it.rec.ID)
		if err != nil {
			return nil, fmt.Errorf("record: import %q: %w", it.rec.ID, err)
		}
		if err := tm.AddChild(child, parent); err != nil {
			return nil, fmt.Errorf("record: import %q: %w", it.rec.ID, err)
		}
		buf.note(it.rec)
		for _, c := range it.rec.Children {
			queue = append(queue, item{c, it.rec.ID})
		}
	}

	buf.flush(assoc)
	return tm, nil
}
