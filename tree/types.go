package tree

import (
	"errors"
	"log/slog"
	"sync"
	"weak"

	"github.com/katalvlaran/lvtree/observe"
	"github.com/katalvlaran/lvtree/treeid"
)

// Sentinel errors for pointer-graph tree operations.
var (
	// ErrNilNode indicates a nil *Node argument.
	ErrNilNode = errors.New("tree: node is nil")

	// ErrEmptyID indicates an attempt to build a node with an empty id.
	ErrEmptyID = errors.New("tree: node id is empty")

	// ErrNodeNotFound indicates no node with the requested id is reachable from the root.
	ErrNodeNotFound = errors.New("tree: node not found")

	// ErrNotInTree indicates a node argument is not linked under this tree's root.
	ErrNotInTree = errors.New("tree: node is not part of this tree")

	// ErrAlreadyAttached indicates AddChild got a node that still has a live parent.
	// Use MoveNode to relink it.
	ErrAlreadyAttached = errors.New("tree: node already has a parent")

	// ErrCycle indicates the operation would make a node its own ancestor.
	ErrCycle = errors.New("tree: operation would create a cycle")

	// ErrParentReleased indicates a weak parent reference no longer resolves.
	ErrParentReleased = errors.New("tree: parent reference released")
)

// Node is a tree vertex. Its id never changes.
// children is owned; parent is a weak back-reference and is meaningful only
// while linked is true.
type Node struct {
	id string

	mu       sync.Mutex // guards children, parent, linked
	children []*Node
	parent   weak.Pointer[Node]
	linked   bool
}

// NewNode returns a detached node with a fresh random id.
func NewNode() *Node {
	return &Node{id: treeid.New()}
}

// NewNodeWithID returns a detached node carrying id.
// Used by importers that must preserve externally supplied ids.
func NewNodeWithID(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	return &Node{id: id}, nil
}

// ID returns the node's identity.
func (n *Node) ID() string {
	return n.id
}

// Parent resolves the weak parent reference.
// ok is false for a root, a detached node, or a released parent.
func (n *Node) Parent() (*Node, bool) {
	p, _ := n.parentRef()
	return p, p != nil
}

// Children returns a snapshot of the ordered child sequence.
func (n *Node) Children() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.children)
}

// parentRef reports the resolved parent and whether a parent link exists at
// all. linked && p == nil means the parent was released.
func (n *Node) parentRef() (p *Node, linked bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.linked {
		return nil, false
	}
	return n.parent.Value(), true
}

// setParent rewrites the weak back-reference.
func (n *Node) setParent(p *Node) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.parent = weak.Make(p)
	n.linked = true
}

// appendChild adds c at the end of the child sequence.
func (n *Node) appendChild(c *Node) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.children = append(n.children, c)
}

// removeChild drops c (by pointer identity) and reports whether it was present.
func (n *Node) removeChild(c *Node) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

// Option configures a Tree at construction.
type Option func(t *Tree)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tree) {
		if l != nil {
			t.log = l
		}
	}
}

// WithObserver installs an event observer. A nil observer is ignored.
func WithObserver(o observe.Observer) Option {
	return func(t *Tree) {
		if o != nil {
			t.obs = o
		}
	}
}

// WithIDGenerator sets the id source used for the default root and for
// Tree.NewNode. A nil generator is ignored.
func WithIDGenerator(g treeid.Generator) Option {
	return func(t *Tree) {
		if g != nil {
			t.gen = g
		}
	}
}

// Tree owns a root node and serializes every structural operation behind mu.
type Tree struct {
	mu   sync.Mutex
	root *Node

	log *slog.Logger
	obs observe.Observer
	gen treeid.Generator
}

// New creates a tree rooted at root, or at a freshly allocated node when
// root is nil. The root is the tree's boundary: ancestor walks stop there
// even if the supplied node was once linked elsewhere.
// Complexity: O(1).
func New(root *Node, opts ...Option) *Tree {
	t := &Tree{
		log: slog.New(slog.DiscardHandler),
		obs: observe.Nop{},
		gen: treeid.New,
	}
	for _, opt := range opts {
		opt(t)
	}
	if root == nil {
		root = &Node{id: t.gen()}
	}
	t.root = root

	return t
}

// NewNode returns a detached node whose id comes from the tree's generator.
// The node is not linked; pass it to AddChild.
func (t *Tree) NewNode() *Node {
	return &Node{id: t.gen()}
}

// Root returns the root node. The root never changes after New.
func (t *Tree) Root() *Node {
	return t.root
}
