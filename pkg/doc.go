// Package pkg provides the libraries behind panels, the layout layer of a
// reactive dashboard toolkit.
//
// # Overview
//
// A dashboard is a tree of components: leaf panes showing content, and
// containers arranging them in rows, columns, tabs or a grid. Each component
// keeps its properties in an observable bag. When a component is rendered into
// a display surface it materializes one backend node per root, and every later
// property change is pushed to those nodes. Containers reconcile their
// children by identity, so nodes of surviving children are reused and nodes of
// dropped children are disposed.
//
// # Architecture
//
//	TOML description
//	       ↓
//	  [io] package (build the component tree)
//	       ↓
//	  [layout] / [pane] packages (containers and leaves)
//	       ↓
//	  [viewable] package (materialize, push, link)
//	       ↓
//	  [scene] package (backend nodes, DOT/SVG export)
//
// # Quick Start
//
//	row := layout.NewRow("# Title", layout.NewColumn("a", "b"))
//	doc := scene.NewDocument(scene.NewMemory(), nil)
//	root, _ := viewable.Render(doc, row)
//
//	_ = row.Insert(1, "inserted") // one children update on root
//	fmt.Println(scene.ToDOT(root))
//
// # Main Packages
//
// [param] - Observable property bags with validation, batched updates and
// precedence-ordered watchers.
//
// [viewable] - The component contract and the per-root ledger shared by every
// component: materialization, change pushing and client write-back.
//
// [pane] - Markdown, HTML and string panes, and [pane.Wrap] which turns any
// content into a component.
//
// [layout] - Row, Column, Tabs, GridSpec and the spacers.
//
// [scene] - The backend contract, an in-memory backend, and Graphviz export.
//
// [io] - Dashboard descriptions in TOML and scene graph export to JSON.
//
// [cache] - File cache for rendered artifacts.
//
// [errors] - Coded errors raised by container contracts.
//
// [observability] - Hooks for layout and cache events.
package pkg
