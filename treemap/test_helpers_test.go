package treemap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/treeid"
	"github.com/katalvlaran/lvtree/treemap"
)

// fixture holds the records of the R→A→B chain used across tests.
type fixture struct {
	tm      *treemap.TreeMap
	r, a, b *treemap.NodeRecord
}

// newChain builds root R with child A and grandchild B.
func newChain(t *testing.T, opts ...treemap.Option) fixture {
	t.Helper()
	opts = append([]treemap.Option{treemap.WithIDGenerator(treeid.Sequence("n"))}, opts...)
	tm := treemap.New(nil, opts...)
	a, b := tm.NewRecord(), tm.NewRecord()
	require.NoError(t, tm.AddChild(a, nil))
	require.NoError(t, tm.AddChild(b, a))

	return fixture{tm: tm, r: tm.Root(), a: a, b: b}
}

// recordIDs maps records to ids, keeping order.
func recordIDs(recs []*treemap.NodeRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID()
	}
	return out
}

// requireInvariants checks the single root, referential integrity, and that
// every non-root id is listed by exactly the parent it names.
func requireInvariants(t *testing.T, tm *treemap.TreeMap) {
	t.Helper()
	root := tm.Root()
	_, hasParent := root.Parent()
	require.False(t, hasParent, "root must be parentless")

	listed := map[string]int{}
	for _, id := range tm.IDs() {
		rec, err := tm.FindByID(id)
		require.NoError(t, err)
		for _, cid := range rec.Children() {
			listed[cid]++
			require.Equal(t, 1, listed[cid], "id %s listed more than once", cid)
			child, err := tm.FindByID(cid)
			require.NoError(t, err, "child id %s must resolve", cid)
			pid, ok := child.Parent()
			require.True(t, ok)
			require.Equal(t, rec.ID(), pid, "child %s names the wrong parent", cid)
		}
	}
	require.Len(t, listed, tm.Len()-1, "every non-root record is listed once")
}
