package record

import (
	"github.com/katalvlaran/lvtree/payload"
	"github.com/katalvlaran/lvtree/tree"
	"github.com/katalvlaran/lvtree/treemap"
)

// ExportTree snapshots t into a Record under the tree lock. Data comes from
// assoc by id and is omitted when assoc holds nothing; a nil assoc exports
// shape only.
func ExportTree(t *tree.Tree, assoc payload.Associator) (Record, error) {
	var out Record
	err := t.View(func(root *tree.Node) error {
		out = exportNode(root, assoc)
		return nil
	})
	return out, err
}

func exportNode(n *tree.Node, assoc payload.Associator) Record {
	r := Record{ID: n.ID(), Data: lookup(assoc, n.ID())}
	for _, c := range n.Children() {
		r.Children = append(r.Children, exportNode(c, assoc))
	}
	return r
}

// ExportTreeMap snapshots tm into a Record under its read lock, resolving
// child ids through the table. A child id that does not resolve fails the
// export with treemap.ErrDanglingReference.
func ExportTreeMap(tm *treemap.TreeMap, assoc payload.Associator) (Record, error) {
	var out Record
	err := tm.View(func(v treemap.View) error {
		r, err := exportRecord(v, v.Root(), assoc)
		out = r
		return err
	})
	if err != nil {
		return Record{}, err
	}
	return out, nil
}

func exportRecord(v treemap.View, rec *treemap.NodeRecord, assoc payload.Associator) (Record, error) {
	r := Record{ID: rec.ID(), Data: lookup(assoc, rec.ID())}
	for _, cid := range rec.Children() {
		child, err := v.Get(cid)
		if err != nil {
			return Record{}, err
		}
		cr, err := exportRecord(v, child, assoc)
		if err != nil {
			return Record{}, err
		}
		r.Children = append(r.Children, cr)
	}
	return r, nil
}

func lookup(assoc payload.Associator, id string) any {
	if assoc == nil {
		return nil
	}
	v, _ := assoc.Get(id)
	return v
}
