// Package lvtree is a thread-safe, in-memory, single-rooted tree of
// uniquely identified nodes, offered in two interchangeable shapes.
//
// 🚀 What is lvtree?
//
//	Two representations of the same operations:
//		• tree/     – pointer graph: nodes own their children, parent is a weak reference
//		• treemap/  – arena: one id → record table, links are plain ids
//
//	Both support AddChild, FindByID, Ancestors and MoveNode, and both refuse
//	a move that would place a node inside its own subtree, leaving the tree
//	unchanged.
//
// ✨ Around the core
//
//   - treeid/   – UUID v4 identities, deterministic sequences for tests
//   - payload/  – id-keyed value store; payload never lives in a node
//   - record/   – nested {id, data, children} import/export as JSON or YAML
//   - observe/  – operation hooks with a Prometheus implementation
//
// Quick ASCII example:
//
//	R ── A ── B          MoveNode(B, R)          R ── A
//	                     ─────────────▶          └─── B
//
//	MoveNode(A, B) is refused: B is below A.
//
// Every tree accepts *slog.Logger via WithLogger; the default discards.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
