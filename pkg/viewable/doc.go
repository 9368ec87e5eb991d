// Package viewable provides the base abstraction for anything that takes part
// in a layout tree.
//
// # Overview
//
// A [Component] produces backend nodes on demand and remembers them. Each
// component keeps a ledger keyed by the id of the display-surface root it was
// rendered under; an entry holds the node, its parent node and the
// [scene.Document] it belongs to. The same component may be shown under
// several roots at once, each with its own node, and dropping one root's entry
// never affects the others.
//
// [Base] implements the ledger, the declared common properties (name, sizing
// and spacing) and the reactive push: whenever a property changes, every live
// node of the component receives one bulk update carrying the renamed
// properties. Types that need to intercept that update (containers, which must
// reconcile their children first) implement [ModelUpdater].
//
// # Rendering
//
// [Render] materializes a component as a new root of a document, and [Detach]
// tears it down again:
//
//	doc := scene.NewDocument(scene.NewMemory(), logger)
//	root, err := viewable.Render(doc, row)
//	// ...
//	viewable.Detach(doc, row, root)
//
// # Selection
//
// [Component.Select] walks the tree and returns every component matching a
// [Selector]; a nil selector matches everything.
package viewable
