// Package observe defines the hook surface both tree representations report
// structural events through, plus a no-op and a Prometheus implementation.
//
// Every call carries the representation name (ReprPointer or ReprArena) so a
// single Observer can serve several trees of either kind.
package observe

// Representation labels passed to Observer methods.
const (
	ReprPointer = "pointer"
	ReprArena   = "arena"
)

// Observer receives structural events from a tree.
// Implementations must be safe for concurrent use and must not call back
// into the tree that reports to them: events fire while the tree lock is held.
type Observer interface {
	// NodeAdded fires after a child has been linked.
	NodeAdded(repr string)

	// NodeMoved fires after a successful move.
	NodeMoved(repr string)

	// MoveRefused fires when a move was rejected because it would create a cycle.
	MoveRefused(repr string)

	// Lookup fires on every FindByID.
	Lookup(repr string, found bool)
}

// Nop discards every event.
type Nop struct{}

// NodeAdded implements Observer.
func (Nop) NodeAdded(string) {}

// NodeMoved implements Observer.
func (Nop) NodeMoved(string) {}

// MoveRefused implements Observer.
func (Nop) MoveRefused(string) {}

// Lookup implements Observer.
func (Nop) Lookup(string, bool) {}
