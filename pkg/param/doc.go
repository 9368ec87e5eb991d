// Package param provides declared, observable properties for layout components.
//
// # Overview
//
// Every component owns a [Bag]: an ordered set of property declarations with
// per-instance values. Writing to a bag notifies watchers synchronously, in the
// same call, with the batch of [Event] values describing what changed. There is
// no suspension point between the write and the last watcher returning.
//
// # Declarations
//
// A [Decl] names a property and gives it a default, an optional per-instance
// factory (so collections are never shared between instances), an optional
// validator, and a read-only flag:
//
//	b := param.NewBag("Tabs",
//	    param.Decl{Name: "active", Default: 0, Validate: param.NonNegative},
//	    param.Decl{Name: "objects", Factory: func() any { return []Component{} }},
//	)
//
// Redeclaring a name replaces the earlier declaration; this is how a
// specialised component narrows or overrides what its base declared.
//
// # Watchers
//
// Watchers are ordered by [Precedence], then by registration order. The layout
// layer relies on this: label synchronization ([PrecedenceSync]) runs before
// model reconciliation ([PrecedenceModel]), and both run before any watcher
// registered with [PrecedenceDefault].
//
//	unwatch := b.Watch(func(events []param.Event) error {
//	    for _, ev := range events {
//	        fmt.Println(ev.Name, ev.Old, "->", ev.New)
//	    }
//	    return nil
//	}, param.PrecedenceDefault, "active")
//	defer unwatch()
//
// A watcher error aborts the remaining watchers and is returned from the write.
// The new values stay in place; there is no rollback.
//
// # Concurrency
//
// A Bag is not safe for concurrent use. Callers serialize writes per component.
package param
