// Package layout provides containers that arrange components into dashboards
// and keep them in sync with a backend scene graph.
//
// # Containers
//
//   - [Row] and [Column]: ordered children laid out horizontally or vertically
//   - [Tabs]: ordered children, each shown in a labelled tab
//   - [GridSpec]: children placed on non-overlapping rectangular grid regions
//   - [Spacer], [VSpacer], [HSpacer]: empty leaves that only emit sizing
//
// # Reconciliation
//
// Every container owns a property named objects. Mutation methods never edit
// the collection in place: they build the complete replacement and assign it
// in one write, so watchers see exactly one change per logical operation.
// The container's model watcher then reconciles, for every root the container
// is rendered under:
//
//  1. each current child reuses the node it already has for that root, or is
//     materialized against the container's node;
//  2. each child that was present before and is gone now is disposed for that
//     root, recursively;
//  3. the container node receives the complete child list, together with any
//     other changed property, in a single update.
//
// Reuse is decided by identity. A child that survives a reorder keeps its node.
//
//	row := layout.NewRow("# Title", plot)
//	root, _ := viewable.Render(doc, row)
//	_ = row.Insert(1, table)  // one update of Row.children, plot keeps its node
//	_, _ = row.Pop(0)         // the Markdown node is disposed
//
// # Grids
//
// [GridSpec] places children on half-open integer rectangles addressed with
// [Index] values:
//
//	g := layout.NewGridSpec()
//	_ = g.Set(layout.Span(0, 2), layout.At(0), a)
//	_ = g.Set(layout.At(0), layout.Span(1, 3), b)
//	err := g.Set(layout.At(1), layout.At(1), c) // *errors.OverlapError
//
// Reading a multi-cell selection returns a new, zero-based [GridSpec] whose
// pixel size is scaled to the fraction of the grid it covers.
//
// # Concurrency
//
// Containers are not safe for concurrent use. Mutations and the reconciliation
// they trigger run synchronously on the caller's goroutine; callers serialize
// access per root.
package layout
