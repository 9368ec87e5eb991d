package viewable

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/matzehuels/panels/pkg/observability"
	"github.com/matzehuels/panels/pkg/param"
	"github.com/matzehuels/panels/pkg/scene"
)

// Sizing modes accepted by the sizing_mode property.
const (
	SizingFixed         = "fixed"
	SizingStretchWidth  = "stretch_width"
	SizingStretchHeight = "stretch_height"
	SizingStretchBoth   = "stretch_both"
	SizingScaleWidth    = "scale_width"
	SizingScaleHeight   = "scale_height"
	SizingScaleBoth     = "scale_both"
)

// Component is anything that can be placed in a layout.
type Component interface {
	Name() string
	SetName(name string)
	TypeName() string
	Params() *param.Bag

	// Materialize returns the node for root, creating it on first call.
	// A nil root makes the new node its own root.
	Materialize(doc *scene.Document, root, parent scene.Node) (scene.Node, error)
	// Model returns the node registered for the root with the given id.
	Model(rootID string) (scene.Node, bool)
	// Dispose drops the node registered for root, recursively.
	Dispose(root scene.Node)

	Select(sel Selector) []Component
	Repr(depth int) string
}

// ModelUpdater intercepts the push of property changes into a live node.
// msg holds the already renamed properties other than objects.
type ModelUpdater interface {
	UpdateModel(events []param.Event, msg scene.Props, e Entry) error
}

// Entry is one ledger record.
type Entry struct {
	Node   scene.Node
	Parent scene.Node
	Root   scene.Node
	Doc    *scene.Document
}

// Common declares the properties shared by every component.
func Common() []param.Decl {
	return []param.Decl{
		{Name: "name", Doc: "Display name, used as the default tab label."},
		{Name: "width", Validate: param.NonNegative},
		{Name: "height", Validate: param.NonNegative},
		{Name: "min_width", Validate: param.NonNegative},
		{Name: "min_height", Validate: param.NonNegative},
		{Name: "max_width", Validate: param.NonNegative},
		{Name: "max_height", Validate: param.NonNegative},
		{Name: "sizing_mode", Validate: param.OneOf(SizingFixed, SizingStretchWidth, SizingStretchHeight,
			SizingStretchBoth, SizingScaleWidth, SizingScaleHeight, SizingScaleBoth)},
		{Name: "margin"},
		{Name: "css_classes"},
		{Name: "background"},
	}
}

var nameCounter atomic.Int64

// autoName returns a unique name for an instance of typeName.
func autoName(typeName string) string {
	return fmt.Sprintf("%s%05d", typeName, nameCounter.Add(1))
}

// Base implements the ledger and reactive push shared by all components.
// Embed it and call Init from the constructor.
type Base struct {
	self     Component
	typeName string
	params   *param.Bag
	rename   map[string]string
	linked   []string

	models map[string]Entry
	roots  []string // ledger keys in registration order
	links  map[string][]func()
	origin scene.Node // node whose change is being written back, if any
	auto   bool
}

// Init prepares b for self. rename maps property names to backend property
// names; a mapping to "" keeps the property out of the backend. linked names
// the properties whose backend-originated changes are written back.
func (b *Base) Init(self Component, typeName string, rename map[string]string, linked []string, decls ...param.Decl) {
	b.self = self
	b.typeName = typeName
	b.params = param.NewBag(typeName, Common()...)
	b.params.Declare(decls...)
	b.rename = make(map[string]string, len(rename))
	for k, v := range rename {
		b.rename[k] = v
	}
	b.linked = slices.Clone(linked)
	b.models = make(map[string]Entry)
	b.links = make(map[string][]func())
	b.auto = true
	_ = b.params.Set("name", autoName(typeName))
	b.params.Watch(b.push, param.PrecedenceModel)
}

// TypeName returns the component type name.
func (b *Base) TypeName() string { return b.typeName }

// Params returns the component's property bag.
func (b *Base) Params() *param.Bag { return b.params }

// Name returns the display name.
func (b *Base) Name() string { return param.Get[string](b.params, "name") }

// SetName sets the display name. An empty name is ignored.
func (b *Base) SetName(name string) {
	if name == "" {
		return
	}
	b.auto = false
	_ = b.params.Set("name", name)
}

// HasAutoName reports whether the name was generated rather than supplied.
func (b *Base) HasAutoName() bool { return b.auto }

// Rename returns the backend name for a property and whether it is pushed.
func (b *Base) Rename(name string) (string, bool) {
	if r, ok := b.rename[name]; ok {
		return r, r != ""
	}
	return name, true
}

// ProcessParamChange renames values for the backend, dropping hidden ones.
func (b *Base) ProcessParamChange(values map[string]any) scene.Props {
	props := make(scene.Props, len(values))
	for k, v := range values {
		if r, ok := b.Rename(k); ok {
			props[r] = v
		}
	}
	return props
}

// InitProperties returns every declared property except objects whose value
// is not nil, renamed for the backend.
func (b *Base) InitProperties() scene.Props {
	values := make(map[string]any)
	for _, v := range b.params.Values() {
		if v.Name == "objects" || v.Value == nil {
			continue
		}
		values[v.Name] = v.Value
	}
	return b.ProcessParamChange(values)
}

// Model implements [Component].
func (b *Base) Model(rootID string) (scene.Node, bool) {
	e, ok := b.models[rootID]
	return e.Node, ok
}

// Entry returns the ledger record for rootID.
func (b *Base) Entry(rootID string) (Entry, bool) {
	e, ok := b.models[rootID]
	return e, ok
}

// Entries returns every ledger record in registration order.
func (b *Base) Entries() []Entry {
	out := make([]Entry, 0, len(b.roots))
	for _, id := range b.roots {
		out = append(out, b.models[id])
	}
	return out
}

// Register records node as the model for root and wires linked properties.
func (b *Base) Register(e Entry) {
	id := e.Root.ID()
	if _, ok := b.models[id]; !ok {
		b.roots = append(b.roots, id)
	}
	b.models[id] = e
	b.link(e)
	observability.Layout().OnMaterialize(b.typeName, id)
}

// Unregister removes the ledger record for root, unlinks its properties and
// disposes the node. It reports whether a record existed.
func (b *Base) Unregister(root scene.Node) bool {
	id := root.ID()
	e, ok := b.models[id]
	if !ok {
		return false
	}
	delete(b.models, id)
	b.roots = slices.DeleteFunc(b.roots, func(r string) bool { return r == id })
	for _, unlink := range b.links[id] {
		unlink()
	}
	delete(b.links, id)
	e.Node.Dispose()
	observability.Layout().OnDispose(b.typeName, id)
	return true
}

// Dispose implements [Component] for leaves.
func (b *Base) Dispose(root scene.Node) {
	b.Unregister(root)
}

// MaterializeLeaf creates a childless node of kind with the initial
// properties plus extra, registering it for root.
func (b *Base) MaterializeLeaf(doc *scene.Document, root, parent scene.Node, kind scene.Kind, extra scene.Props) (scene.Node, error) {
	if root != nil {
		if n, ok := b.Model(root.ID()); ok {
			return n, nil
		}
	}
	props := b.InitProperties()
	for k, v := range extra {
		props[k] = v
	}
	node, err := doc.Backend.Create(kind, props)
	if err != nil {
		return nil, err
	}
	if root == nil {
		root = node
	}
	b.Register(Entry{Node: node, Parent: parent, Root: root, Doc: doc})
	doc.Logger.Debug("materialized", "type", b.typeName, "kind", kind, "root", root.ID())
	return node, nil
}

// link subscribes to backend-originated changes of linked properties.
func (b *Base) link(e Entry) {
	id := e.Root.ID()
	for _, name := range b.linked {
		backendName, ok := b.Rename(name)
		if !ok {
			continue
		}
		unsub := e.Node.OnChange(backendName, func(_, value any) {
			b.origin = e.Node
			defer func() { b.origin = nil }()
			if err := b.params.Set(name, value); err != nil {
				e.Doc.Logger.Error("linked property write-back failed", "type", b.typeName, "property", name, "err", err)
			}
		})
		b.links[id] = append(b.links[id], unsub)
	}
}

// push is the model watcher: one bulk update per live node.
func (b *Base) push(events []param.Event) error {
	for _, e := range b.Entries() {
		values := make(map[string]any, len(events))
		for _, ev := range events {
			if ev.Name == "objects" {
				continue
			}
			if e.Node == b.origin && slices.Contains(b.linked, ev.Name) {
				continue
			}
			values[ev.Name] = ev.New
		}
		msg := b.ProcessParamChange(values)
		if u, ok := b.self.(ModelUpdater); ok {
			if err := u.UpdateModel(events, msg, e); err != nil {
				return err
			}
			continue
		}
		if len(msg) == 0 {
			continue
		}
		if err := e.Node.Update(msg); err != nil {
			return err
		}
	}
	return nil
}

// Select implements [Component] for leaves.
func (b *Base) Select(sel Selector) []Component {
	if sel == nil || sel(b.self) {
		return []Component{b.self}
	}
	return nil
}

// Repr implements [Component] for leaves.
func (b *Base) Repr(int) string {
	params := ParamReprs(b, "objects")
	if len(params) == 0 {
		return b.typeName
	}
	return fmt.Sprintf("%s(%s)", b.typeName, strings.Join(params, ", "))
}

// String returns the tree representation of the component.
func (b *Base) String() string {
	return b.self.Repr(0)
}

// ParamReprs formats the non-default properties of b as name=value pairs,
// skipping the generated name and any excluded property.
func ParamReprs(b *Base, exclude ...string) []string {
	var out []string
	for _, v := range b.params.Values() {
		if slices.Contains(exclude, v.Name) || v.Value == nil || b.params.IsDefault(v.Name) {
			continue
		}
		if v.Name == "name" && b.auto {
			continue
		}
		if s, ok := v.Value.(string); ok {
			out = append(out, fmt.Sprintf("%s=%q", v.Name, s))
			continue
		}
		out = append(out, fmt.Sprintf("%s=%v", v.Name, v.Value))
	}
	return out
}
