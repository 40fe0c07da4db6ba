package treemap

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/katalvlaran/lvtree/observe"
	"github.com/katalvlaran/lvtree/treeid"
)

// RootAlias is the reserved table key that always resolves to the root record.
const RootAlias = "root"

// defaultCapacity pre-sizes the table when WithCapacity is not given.
const defaultCapacity = 100

// Sentinel errors for arena tree operations.
var (
	// ErrNilRecord indicates a nil *NodeRecord argument.
	ErrNilRecord = errors.New("treemap: record is nil")

	// ErrEmptyID indicates a record without an id.
	ErrEmptyID = errors.New("treemap: record id is empty")

	// ErrReservedID indicates a child record whose id is RootAlias.
	ErrReservedID = errors.New("treemap: record id is reserved")

	// ErrDuplicateID indicates an insert whose id is already live in the table.
	ErrDuplicateID = errors.New("treemap: record id already present")

	// ErrAlreadyAttached indicates AddChild got a record that already has a
	// parent or children. Use MoveNode to relink it.
	ErrAlreadyAttached = errors.New("treemap: record already linked")

	// ErrNodeNotFound indicates no record with the requested id.
	ErrNodeNotFound = errors.New("treemap: node not found")

	// ErrNotInTree indicates a handle that is not the live table entry for its id.
	ErrNotInTree = errors.New("treemap: record is not part of this tree")

	// ErrCycle indicates the operation would make a record its own ancestor.
	ErrCycle = errors.New("treemap: operation would create a cycle")

	// ErrDanglingReference indicates a link id that does not resolve in the table.
	ErrDanglingReference = errors.New("treemap: dangling reference")
)

// NodeRecord is one table entry. Its id never changes; links are ids.
type NodeRecord struct {
	id string

	mu        sync.RWMutex // guards children, parent, hasParent, owned
	children  []string
	parent    string
	hasParent bool
	owned     bool // live in some table, as root or child
}

// NewRecord returns an unlinked record with a fresh random id.
func NewRecord() *NodeRecord {
	return &NodeRecord{id: treeid.New()}
}

// NewRecordWithID returns an unlinked record carrying id.
// Empty ids are rejected. RootAlias is accepted here but only usable as a
// table root; AddChild refuses it with ErrReservedID.
func NewRecordWithID(id string) (*NodeRecord, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	return &NodeRecord{id: id}, nil
}

// ID returns the record's identity.
func (r *NodeRecord) ID() string {
	return r.id
}

// Parent returns the parent id; ok is false for the root or an unlinked record.
func (r *NodeRecord) Parent() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.parent, r.hasParent
}

// Children returns a snapshot of the ordered child ids.
func (r *NodeRecord) Children() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.children)
}

// claim marks a free record as owned by a table. It fails when the record
// is already live in a table or still carries links.
func (r *NodeRecord) claim() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.owned || r.hasParent || len(r.children) > 0 {
		return false
	}
	r.owned = true
	return true
}

// unclaim undoes a claim whose insert was then refused.
func (r *NodeRecord) unclaim() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.owned = false
}

func (r *NodeRecord) setParent(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.parent, r.hasParent = id, true
}

// release drops every link and the ownership mark of a record leaving its table.
func (r *NodeRecord) release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.parent, r.hasParent = "", false
	r.children = nil
	r.owned = false
}

func (r *NodeRecord) appendChild(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.children = append(r.children, id)
}

func (r *NodeRecord) setChildren(ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.children = ids
}

// removeChild drops the first occurrence of id and reports whether it was present.
func (r *NodeRecord) removeChild(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.Index(r.children, id)
	if i < 0 {
		return false
	}
	r.children = slices.Delete(r.children, i, i+1)
	return true
}

func checkID(id string) error {
	switch id {
	case "":
		return ErrEmptyID
	case RootAlias:
		return ErrReservedID
	}
	return nil
}

// CollisionPolicy decides what AddChild does with an id that is already live.
type CollisionPolicy int

const (
	// RejectDuplicates fails the insert with ErrDuplicateID.
	RejectDuplicates CollisionPolicy = iota

	// Overwrite replaces the live record (last write wins).
	Overwrite
)

// String implements fmt.Stringer.
func (p CollisionPolicy) String() string {
	switch p {
	case RejectDuplicates:
		return "reject"
	case Overwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// Option configures a TreeMap at construction.
type Option func(t *TreeMap)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *TreeMap) {
		if l != nil {
			t.log = l
		}
	}
}

// WithObserver installs an event observer. A nil observer is ignored.
func WithObserver(o observe.Observer) Option {
	return func(t *TreeMap) {
		if o != nil {
			t.obs = o
		}
	}
}

// WithIDGenerator sets the id source for the default root and TreeMap.NewRecord.
// A nil generator is ignored.
func WithIDGenerator(g treeid.Generator) Option {
	return func(t *TreeMap) {
		if g != nil {
			t.gen = g
		}
	}
}

// WithCollisionPolicy selects how AddChild treats an id that is already live.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(t *TreeMap) { t.policy = p }
}

// WithCapacity pre-sizes the table for n records. Non-positive n is ignored.
func WithCapacity(n int) Option {
	return func(t *TreeMap) {
		if n > 0 {
			t.capacity = n
		}
	}
}

// TreeMap owns the id → record table.
type TreeMap struct {
	mu    sync.RWMutex
	nodes map[string]*NodeRecord

	policy   CollisionPolicy
	capacity int

	log *slog.Logger
	obs observe.Observer
	gen treeid.Generator
}

// New creates a table holding root under its own id and RootAlias, or a
// freshly generated root when root is nil. A root whose id is RootAlias
// occupies a single key.
//
// Panics if root has an empty id, which can only happen with a zero-value
// NodeRecord built outside NewRecord/NewRecordWithID, or if root is already
// live in another table or carries links. Records are never shared between
// tables.
func New(root *NodeRecord, opts ...Option) *TreeMap {
	t := &TreeMap{
		capacity: defaultCapacity,
		log:      slog.New(slog.DiscardHandler),
		obs:      observe.Nop{},
		gen:      treeid.New,
	}
	for _, opt := range opts {
		opt(t)
	}

	if root == nil {
		root = &NodeRecord{id: t.gen()}
	}
	if root.id == "" {
		panic("treemap: invalid root record: " + ErrEmptyID.Error())
	}
	if !root.claim() {
		panic("treemap: root record is already linked")
	}

	t.nodes = make(map[string]*NodeRecord, t.capacity)
	t.nodes[root.id] = root
	t.nodes[RootAlias] = root

	return t
}

// NewRecord returns an unlinked record whose id comes from the table's generator.
func (t *TreeMap) NewRecord() *NodeRecord {
	return &NodeRecord{id: t.gen()}
}

// Policy returns the configured collision policy.
func (t *TreeMap) Policy() CollisionPolicy {
	return t.policy
}

// Root resolves RootAlias.
func (t *TreeMap) Root() *NodeRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nodes[RootAlias]
}
