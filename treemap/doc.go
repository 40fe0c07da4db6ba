// Package treemap implements a concurrency-safe, mutable arena tree.
//
// Every NodeRecord lives in one table owned by the TreeMap, keyed by id.
// Parent and child links are ids, never pointers, so the memory graph is
// acyclic whatever the logical shape. The literal key RootAlias ("root")
// maps to the same record as the root's own id, two keys sharing one
// allocation, so the root can be addressed without knowing its id.
//
//	table:
//	  "root"  ─┐
//	  "r-id"  ─┴─► {id:r-id, parent:-,    children:[a-id]}
//	  "a-id"  ───► {id:a-id, parent:r-id, children:[b-id]}
//	  "b-id"  ───► {id:b-id, parent:a-id, children:[]}
//
// Core methods:
//
//	New(root *NodeRecord, opts ...Option) *TreeMap      // O(1)
//	Root() *NodeRecord                                  // O(1)
//	AddChild(child, parent *NodeRecord) error           // O(1)†
//	FindByID(id string) (*NodeRecord, error)            // O(1) average
//	Ancestors(rec *NodeRecord) ([]*NodeRecord, error)   // O(depth)
//	MoveNode(target, newParent *NodeRecord) error       // O(depth + siblings)
//	Len() int, IDs() []string, Depth(rec) (int, error), View(fn) error
//
//	† O(depth(parent)) under the Overwrite collision policy.
//
// Concurrency:
//
//   - One sync.RWMutex guards the table. FindByID, Ancestors, Len, IDs, Depth
//     and View take the read lock and run concurrently with each other.
//     AddChild and MoveNode hold the write lock for their full duration, which
//     is what makes a move's detach and attach a single atomic step.
//   - Each NodeRecord has its own sync.RWMutex so its accessors can be called
//     without the table lock. Record locks are taken after the table lock and
//     never two at once.
//
// Collision policy:
//
//	RejectDuplicates (default) - AddChild with a live id fails with ErrDuplicateID.
//	Overwrite                  - the live record is detached from its parent and
//	                             replaced; the new record inherits its children.
//
// The root's id and RootAlias can never be inserted as children. A root may
// itself carry the id RootAlias, in which case the two keys collapse to one.
// A record belongs to at most one table: New and AddChild refuse records
// that are already live elsewhere.
//
// Errors:
//
//	ErrNilRecord         - a nil *NodeRecord was passed.
//	ErrEmptyID           - a record with an empty id was supplied.
//	ErrReservedID        - AddChild got a child whose id is RootAlias.
//	ErrDuplicateID       - the id is already live (RejectDuplicates, or the root).
//	ErrAlreadyAttached   - AddChild got a record that carries links or is live in a table.
//	ErrNodeNotFound      - FindByID found no record with that id.
//	ErrNotInTree         - a record handle is not the live entry for its id.
//	ErrCycle             - the operation would make a record its own ancestor.
//	ErrDanglingReference - a parent or child id does not resolve in the table.
package treemap
