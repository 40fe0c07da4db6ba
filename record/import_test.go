package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/payload"
	"github.com/katalvlaran/lvtree/record"
	"github.com/katalvlaran/lvtree/tree"
	"github.com/katalvlaran/lvtree/treemap"
)

// importer abstracts the two representations so each scenario runs on both.
type importer struct {
	name string
	// load imports rec and returns an exporter plus a mover by id.
	load func(t *testing.T, rec record.Record, assoc payload.Associator) (
		export func() (record.Record, error),
		move func(target, parent string) error,
		ancestors func(id string) []string,
	)
}

var importers = []importer{
	{
		name: "pointer",
		load: func(t *testing.T, rec record.Record, assoc payload.Associator) (
			func() (record.Record, error), func(string, string) error, func(string) []string,
		) {
			tr, err := record.ImportTree(rec, assoc)
			require.NoError(t, err)
			export := func() (record.Record, error) { return record.ExportTree(tr, assoc) }
			move := func(target, parent string) error {
				n, err := tr.FindByID(target)
				require.NoError(t, err)
				p, err := tr.FindByID(parent)
				require.NoError(t, err)
				return tr.MoveNode(n, p)
			}
			ancestors := func(id string) []string {
				n, err := tr.FindByID(id)
				require.NoError(t, err)
				chain, err := tr.Ancestors(n)
				require.NoError(t, err)
				out := make([]string, len(chain))
				for i, a := range chain {
					out[i] = a.ID()
				}
				return out
			}
			return export, move, ancestors
		},
	},
	{
		name: "arena",
		load: func(t *testing.T, rec record.Record, assoc payload.Associator) (
			func() (record.Record, error), func(string, string) error, func(string) []string,
		) {
			tm, err := record.ImportTreeMap(rec, assoc)
			require.NoError(t, err)
			export := func() (record.Record, error) { return record.ExportTreeMap(tm, assoc) }
			move := func(target, parent string) error {
				n, err := tm.FindByID(target)
				require.NoError(t, err)
				p, err := tm.FindByID(parent)
				require.NoError(t, err)
				return tm.MoveNode(n, p)
			}
			ancestors := func(id string) []string {
				n, err := tm.FindByID(id)
				require.NoError(t, err)
				chain, err := tm.Ancestors(n)
				require.NoError(t, err)
				out := make([]string, len(chain))
				for i, a := range chain {
					out[i] = a.ID()
				}
				return out
			}
			return export, move, ancestors
		},
	},
}

func TestImport_PayloadScenario(t *testing.T) {
	for _, im := range importers {
		t.Run(im.name, func(t *testing.T) {
			store := payload.NewStore()
			export, _, ancestors := im.load(t, scenario, store)

			v, ok := store.Get("z")
			require.True(t, ok)
			assert.Equal(t, 7, v)
			_, ok = store.Get("x")
			assert.False(t, ok)
			assert.Equal(t, []string{"x"}, ancestors("z"))

			out, err := export()
			require.NoError(t, err)
			assert.Equal(t, scenario, out)
		})
	}
}

func TestImport_RoundTripAndMove(t *testing.T) {
	in, err := record.Parse([]byte(movementInput))
	require.NoError(t, err)

	for _, im := range importers {
		t.Run(im.name, func(t *testing.T) {
			export, move, ancestors := im.load(t, in, nil)

			out, err := export()
			require.NoError(t, err)
			assert.Equal(t, in, out, "export(import(r)) must reproduce r")

			require.NoError(t, move(leafToMove, newHome))
			assert.Equal(t, []string{newHome, in.ID}, ancestors(leafToMove))

			out, err = export()
			require.NoError(t, err)
			assert.Equal(t, movementOutput, out)
		})
	}
}

func TestImport_MissingIDRejectedBeforeMutation(t *testing.T) {
	bad := record.Record{ID: "a", Data: "keep-out", Children: []record.Record{
		{ID: "b", Data: 1},
		{Children: []record.Record{{ID: "c"}}},
	}}
	store := payload.NewStore()

	tr, err := record.ImportTree(bad, store)
	assert.ErrorIs(t, err, record.ErrMissingID)
	assert.Nil(t, tr)

	tm, err := record.ImportTreeMap(bad, store)
	assert.ErrorIs(t, err, record.ErrMissingID)
	assert.Nil(t, tm)

	assert.Zero(t, store.Len())
}

func TestImportTree_DuplicateIDs(t *testing.T) {
	dup := record.Record{ID: "r", Children: []record.Record{
		{ID: "d", Data: "first"},
		{ID: "d", Data: "second"},
	}}
	store := payload.NewStore()
	tr, err := record.ImportTree(dup, store)
	require.NoError(t, err)

	assert.Equal(t, 3, tr.Len())
	assert.Len(t, tr.Root().Children(), 2)
	v, _ := store.Get("d")
	assert.Equal(t, "second", v)
}

func TestImportTreeMap_DuplicateIDsLastWriteWins(t *testing.T) {
	dup := record.Record{ID: "r", Children: []record.Record{
		{ID: "d", Data: "first", Children: []record.Record{{ID: "e"}}},
		{ID: "f"},
		{ID: "d", Data: "second"},
	}}
	store := payload.NewStore()
	tm, err := record.ImportTreeMap(dup, store)
	require.NoError(t, err)
	assert.Equal(t, treemap.Overwrite, tm.Policy())

	d, err := tm.FindByID("d")
	require.NoError(t, err)
	pid, _ := d.Parent()
	assert.Equal(t, "r", pid)
	assert.Equal(t, []string{"f", "d"}, tm.Root().Children())
	assert.Equal(t, []string{"e"}, d.Children(), "children queued under the first d follow the live one")

	e, err := tm.FindByID("e")
	require.NoError(t, err)
	chain, err := tm.Ancestors(e)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Same(t, d, chain[0])

	v, _ := store.Get("d")
	assert.Equal(t, "second", v)
	assert.Equal(t, 4, tm.Len())
}

func TestImport_DuplicateWithoutDataKeepsEarlierPayload(t *testing.T) {
	dup := record.Record{ID: "r", Children: []record.Record{
		{ID: "d", Data: "kept"},
		{ID: "d"},
	}}
	for _, im := range importers {
		t.Run(im.name, func(t *testing.T) {
			store := payload.NewStore()
			im.load(t, dup, store)
			v, ok := store.Get("d")
			require.True(t, ok)
			assert.Equal(t, "kept", v)
		})
	}
}

func TestImport_RootNamedRootAlias(t *testing.T) {
	in := record.Record{ID: treemap.RootAlias, Data: 1, Children: []record.Record{{ID: "a"}}}
	for _, im := range importers {
		t.Run(im.name, func(t *testing.T) {
			store := payload.NewStore()
			export, _, ancestors := im.load(t, in, store)
			assert.Equal(t, []string{treemap.RootAlias}, ancestors("a"))

			out, err := export()
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestImport_InvalidIDsAbortWithoutPayload(t *testing.T) {
	store := payload.NewStore()

	_, err := record.ImportTreeMap(record.Record{ID: "r", Data: 1, Children: []record.Record{
		{ID: treemap.RootAlias},
	}}, store)
	assert.ErrorIs(t, err, treemap.ErrReservedID)

	_, err = record.ImportTreeMap(record.Record{ID: "r", Children: []record.Record{{ID: "r", Data: 2}}}, store)
	assert.ErrorIs(t, err, treemap.ErrDuplicateID)

	_, err = record.ImportTreeMap(record.Record{ID: "r", Data: 3, Children: []record.Record{
		{ID: "a", Children: []record.Record{{ID: "a"}}},
	}}, store)
	assert.ErrorIs(t, err, treemap.ErrCycle)

	assert.Zero(t, store.Len())
}

func TestImport_PassesOptions(t *testing.T) {
	tr, err := record.ImportTree(scenario, nil, tree.WithIDGenerator(func() string { return "gen" }))
	require.NoError(t, err)
	assert.Equal(t, "gen", tr.NewNode().ID())

	tm, err := record.ImportTreeMap(scenario, nil, treemap.WithCollisionPolicy(treemap.RejectDuplicates))
	require.NoError(t, err)
	assert.Equal(t, treemap.Overwrite, tm.Policy())
}

func TestExport_NilAssociatorOmitsData(t *testing.T) {
	tr, err := record.ImportTree(scenario, nil)
	require.NoError(t, err)
	out, err := record.ExportTree(tr, nil)
	require.NoError(t, err)
	assert.Nil(t, out.Children[1].Data)
	assert.Equal(t, "z", out.Children[1].ID)
}
