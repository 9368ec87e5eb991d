package layout

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/panels/pkg/observability"
	"github.com/matzehuels/panels/pkg/pane"
	"github.com/matzehuels/panels/pkg/param"
	"github.com/matzehuels/panels/pkg/scene"
	"github.com/matzehuels/panels/pkg/viewable"
)

// maxReprDepth bounds the nesting printed by Repr.
const maxReprDepth = 10

// reconcileFunc returns the child descriptors for a container node given the
// collection the node last reflected.
type reconcileFunc func(e viewable.Entry, old any) (any, error)

// Panel is the base of all containers.
type Panel struct {
	viewable.Base
	self      viewable.Component
	kind      scene.Kind
	reconcile reconcileFunc
	initProps func() scene.Props
	children  func() []viewable.Component
}

func (p *Panel) init(self viewable.Component, typeName string, kind scene.Kind, childrenProp string, linked []string, decls ...param.Decl) {
	p.self = self
	p.kind = kind
	p.Init(self, typeName, map[string]string{"objects": childrenProp}, linked, decls...)
	p.initProps = p.InitProperties
}

// Kind returns the backend node kind the container targets.
func (p *Panel) Kind() scene.Kind { return p.kind }

// Materialize implements [viewable.Component]. The first call for a root
// creates the node, initializes its properties, materializes every child and
// registers the node; later calls return the registered node.
func (p *Panel) Materialize(doc *scene.Document, root, parent scene.Node) (scene.Node, error) {
	if root != nil {
		if n, ok := p.Model(root.ID()); ok {
			return n, nil
		}
	}
	node, err := doc.Backend.Create(p.kind, nil)
	if err != nil {
		return nil, err
	}
	if root == nil {
		root = node
	}
	e := viewable.Entry{Node: node, Parent: parent, Root: root, Doc: doc}

	children, err := p.reconcile(e, nil)
	if err != nil {
		p.discard(node, root)
		return nil, err
	}
	props := p.initProps()
	if name, ok := p.Rename("objects"); ok {
		props[name] = children
	}
	if err := node.Update(props); err != nil {
		p.discard(node, root)
		return nil, err
	}
	p.Register(e)
	doc.Logger.Debug("materialized", "type", p.TypeName(), "kind", p.kind, "root", root.ID())
	return node, nil
}

// discard disposes node and whatever its children materialized for root
// after a failed first materialization.
func (p *Panel) discard(node, root scene.Node) {
	p.self.Dispose(root)
	node.Dispose()
}

// UpdateModel implements [viewable.ModelUpdater]: a change of objects is
// reconciled and sent with the other changed properties in one update.
func (p *Panel) UpdateModel(events []param.Event, msg scene.Props, e viewable.Entry) error {
	for _, ev := range events {
		if ev.Name != "objects" {
			continue
		}
		children, err := p.reconcile(e, ev.Old)
		if err != nil {
			return err
		}
		if name, ok := p.Rename("objects"); ok {
			msg[name] = children
		}
	}
	if len(msg) == 0 {
		return nil
	}
	return e.Node.Update(msg)
}

// Dispose implements [viewable.Component], cascading to every child.
func (p *Panel) Dispose(root scene.Node) {
	p.Unregister(root)
	for _, c := range p.children() {
		c.Dispose(root)
	}
}

// Select implements [viewable.Component].
func (p *Panel) Select(sel viewable.Selector) []viewable.Component {
	out := p.Base.Select(sel)
	for _, c := range p.children() {
		out = append(out, c.Select(sel)...)
	}
	return out
}

// Repr implements [viewable.Component].
func (p *Panel) Repr(depth int) string {
	labels := make([]string, 0)
	for i := range p.children() {
		labels = append(labels, fmt.Sprintf("[%d]", i))
	}
	return p.repr(depth, labels)
}

func (p *Panel) repr(depth int, labels []string) string {
	if depth > maxReprDepth {
		return "..."
	}
	spacer := "\n" + strings.Repeat("    ", depth+1)
	params := viewable.ParamReprs(&p.Base, "objects")
	objs := make([]string, 0, len(labels))
	for i, c := range p.children() {
		objs = append(objs, labels[i]+" "+c.Repr(depth+1))
	}

	head := p.TypeName()
	if len(params) > 0 {
		head += "(" + strings.Join(params, ", ") + ")"
	}
	if len(objs) == 0 {
		return head
	}
	return head + spacer + strings.Join(objs, spacer)
}

// reconcileList is the reconciliation of ordered children.
func (p *Panel) reconcileList(e viewable.Entry, old any) (any, error) {
	prev, _ := old.([]viewable.Component)
	objs := param.Get[[]viewable.Component](p.Params(), "objects")

	start := time.Now()
	var stats observability.ReconcileStats
	nodes := make([]scene.Node, 0, len(objs))
	for i, obj := range objs {
		c := pane.Wrap(obj, "")
		objs[i] = c
		child, err := p.childNode(e, c, &stats)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, child)
	}
	stats.Disposed = disposeDropped(e.Root, prev, objs)
	p.logReconcile(e, stats, time.Since(start))
	return nodes, nil
}

// childNode returns c's node for e.Root, reusing it when one is registered.
func (p *Panel) childNode(e viewable.Entry, c viewable.Component, stats *observability.ReconcileStats) (scene.Node, error) {
	if n, ok := c.Model(e.Root.ID()); ok {
		stats.Reused++
		return n, nil
	}
	stats.Created++
	return c.Materialize(e.Doc, e.Root, e.Node)
}

func (p *Panel) logReconcile(e viewable.Entry, stats observability.ReconcileStats, d time.Duration) {
	observability.Layout().OnReconcile(p.TypeName(), e.Root.ID(), stats, d)
	e.Doc.Logger.Debug("reconciled", "type", p.TypeName(), "root", e.Root.ID(),
		"reused", stats.Reused, "created", stats.Created, "disposed", stats.Disposed)
}

// disposeDropped disposes, for root, every component of prev that is not in
// cur, and returns how many were disposed.
func disposeDropped(root scene.Node, prev, cur []viewable.Component) int {
	n := 0
	for _, c := range prev {
		if !slices.Contains(cur, c) {
			c.Dispose(root)
			n++
		}
	}
	return n
}
