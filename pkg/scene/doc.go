// Package scene defines the boundary between layout components and the
// rendering backend that owns the retained-mode scene graph.
//
// # Overview
//
// The layout layer never draws anything. It decides which backend nodes to
// create, which to keep, and which to drop, and what structural properties to
// push into them. The backend is reached through two small capability
// interfaces:
//
//   - [Backend] creates nodes of a [Kind] with initial [Props]
//   - [Node] is an opaque handle supporting bulk [Node.Update], property change
//     subscription for bidirectional links, and [Node.Dispose], which must be a
//     no-op on an already orphaned handle
//
// The static [Kinds] table records, per kind, whether the node is a box (has an
// ordered child list) or a text-like leaf; layout code consults the table
// rather than type-switching on backend implementations.
//
// # Documents
//
// A [Document] is the rendering context for one display surface: it binds a
// backend, a logger, and the set of root nodes shown on that surface. The id of
// a root node keys every component's ledger of backend nodes.
//
// # Memory Backend
//
// [Memory] is a complete in-process backend used by tests and the CLI. Every
// node receives a UUID, and every update is recorded so callers can assert on
// exactly what the layout layer pushed.
//
// # Export
//
// [ToDOT] renders a scene graph as Graphviz DOT, and [RenderSVG] turns DOT into
// SVG for inspection.
package scene
