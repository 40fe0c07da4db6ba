package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/tree"
	"github.com/katalvlaran/lvtree/treeid"
)

// fixture holds the nodes of the R→A→B chain used across tests.
type fixture struct {
	tr      *tree.Tree
	r, a, b *tree.Node
}

// newChain builds root R with child A and grandchild B.
func newChain(t *testing.T, opts ...tree.Option) fixture {
	t.Helper()
	opts = append([]tree.Option{tree.WithIDGenerator(treeid.Sequence("n"))}, opts...)
	tr := tree.New(nil, opts...)
	a, b := tr.NewNode(), tr.NewNode()
	require.NoError(t, tr.AddChild(a, tr.Root()))
	require.NoError(t, tr.AddChild(b, a))

	return fixture{tr: tr, r: tr.Root(), a: a, b: b}
}

// ids maps nodes to their ids, keeping order.
func ids(nodes []*tree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}

// requireInvariants checks single root, parent/child symmetry and that every
// node is listed by exactly one parent.
func requireInvariants(t *testing.T, tr *tree.Tree) {
	t.Helper()
	root := tr.Root()
	_, hasParent := root.Parent()
	require.False(t, hasParent, "root must be parentless")

	seen := map[*tree.Node]int{root: 1}
	queue := []*tree.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, c := range n.Children() {
			seen[c]++
			require.Equal(t, 1, seen[c], "node %s listed by more than one parent", c.ID())
			p, ok := c.Parent()
			require.True(t, ok, "child %s has no parent", c.ID())
			require.Same(t, n, p, "child %s names the wrong parent", c.ID())
			queue = append(queue, c)
		}
	}
	require.Equal(t, len(seen), tr.Len())
}
