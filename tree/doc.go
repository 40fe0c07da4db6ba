// Package tree implements a concurrency-safe, mutable, pointer-graph tree.
//
// Each Node owns its children (strong pointers, ordered) and holds a weak,
// non-owning back-reference to its parent (runtime weak.Pointer). The weak
// reference is resolved on every read and fails to resolve once the parent
// has been released by the garbage collector, which can only happen to a
// node whose whole upper chain became unreachable.
//
//	        R            Tree.root ──► R
//	       / \           R.children = [A, C]
//	      A   C          A.parent   ┄┄► R   (weak)
//	      |
//	      B
//
// Core methods:
//
//	New(root *Node, opts ...Option) *Tree             // O(1)
//	Root() *Node                                      // O(1)
//	AddChild(child, parent *Node) error               // O(depth(parent))
//	FindByID(id string) (*Node, error)                // O(n), breadth-first
//	Ancestors(n *Node) ([]*Node, error)               // O(depth(n))
//	MoveNode(target, newParent *Node) error           // O(depth + siblings)
//	Len() int, IDs() []string, Depth(n *Node) (int, error)
//
// Concurrency:
//
//   - One tree-level sync.Mutex is held for the whole of every structural
//     call (AddChild, FindByID, Ancestors, MoveNode, Len, IDs, Depth).
//     MoveNode's detach and attach edits therefore form one critical section.
//   - Each Node owns a sync.Mutex over its children slice and parent
//     reference. Node locks are only taken while the tree lock is held for
//     structural edits, and never two at once, so the root-to-leaf ordering
//     rule cannot be violated.
//   - Node accessors (ID, Parent, Children, Len) take only the node lock and
//     may be called from any goroutine.
//
// Errors:
//
//	ErrNilNode          - a nil *Node was passed.
//	ErrEmptyID          - NewNodeWithID got an empty id.
//	ErrNodeNotFound     - FindByID found no node with that id.
//	ErrNotInTree        - a parent or move target is not linked into this tree.
//	ErrAlreadyAttached  - AddChild got a node that still has a live parent.
//	ErrCycle            - MoveNode would make a node its own ancestor, or
//	                      AddChild got a subtree that already holds this tree.
//	ErrParentReleased   - an ancestor walk hit a parent reference that no
//	                      longer resolves; the chain up to that hop is returned.
package tree
