package scene

import (
	"slices"

	"github.com/charmbracelet/log"
)

// Kind names a backend node type.
type Kind string

// Node kinds targeted by the layout layer.
const (
	KindRow      Kind = "Row"
	KindColumn   Kind = "Column"
	KindTabs     Kind = "Tabs"
	KindTabPanel Kind = "Panel"
	KindGridBox  Kind = "GridBox"
	KindSpacer   Kind = "Spacer"
	KindMarkup   Kind = "Markup"
)

// KindInfo describes the structural capabilities of a node kind.
type KindInfo struct {
	Box      bool   // holds an ordered list of child nodes
	TextLike bool   // text leaf that accepts style overrides
	Children string // name of the property holding child descriptors
}

// Kinds is the static table of known node kinds.
var Kinds = map[Kind]KindInfo{
	KindRow:      {Box: true, Children: "children"},
	KindColumn:   {Box: true, Children: "children"},
	KindTabs:     {Children: "tabs"},
	KindTabPanel: {Children: "child"},
	KindGridBox:  {Children: "children"},
	KindSpacer:   {},
	KindMarkup:   {TextLike: true},
}

// Props is a set of node property values.
type Props map[string]any

// Clone returns a shallow copy of p.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Node is an opaque handle to a backend-owned scene node.
type Node interface {
	ID() string
	Kind() Kind
	// Get returns the current value of a property, or nil.
	Get(name string) any
	// Update applies all props in one atomic change.
	Update(props Props) error
	// OnChange registers fn for backend-originated changes to name.
	OnChange(name string, fn func(old, new any)) (unsubscribe func())
	// Dispose releases the node. It is a no-op on an orphaned handle.
	Dispose()
}

// Backend creates scene nodes.
type Backend interface {
	Create(kind Kind, props Props) (Node, error)
}

// GridChild places a node in a grid box.
type GridChild struct {
	Node    Node
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// IsBox reports whether n is a box node with an ordered child list.
func IsBox(n Node) bool { return Kinds[n.Kind()].Box }

// IsTextLike reports whether n is a text-like leaf node.
func IsTextLike(n Node) bool { return Kinds[n.Kind()].TextLike }

// Children returns the child nodes of n in order, unwrapping grid descriptors.
func Children(n Node) []Node {
	info, ok := Kinds[n.Kind()]
	if !ok || info.Children == "" {
		return nil
	}
	switch v := n.Get(info.Children).(type) {
	case Node:
		return []Node{v}
	case []Node:
		return v
	case []GridChild:
		out := make([]Node, len(v))
		for i, c := range v {
			out[i] = c.Node
		}
		return out
	}
	return nil
}

// Document is the rendering context of one display surface.
// It is not safe for concurrent use.
type Document struct {
	Backend Backend
	Logger  *log.Logger
	roots   []Node
}

// NewDocument creates a document rendering through backend.
// A nil logger falls back to log.Default().
func NewDocument(backend Backend, logger *log.Logger) *Document {
	if logger == nil {
		logger = log.Default()
	}
	return &Document{Backend: backend, Logger: logger}
}

// AddRoot registers n as a root of the document.
func (d *Document) AddRoot(n Node) {
	if !slices.Contains(d.roots, n) {
		d.roots = append(d.roots, n)
	}
}

// RemoveRoot unregisters n.
func (d *Document) RemoveRoot(n Node) {
	d.roots = slices.DeleteFunc(d.roots, func(r Node) bool { return r == n })
}

// Roots returns the document roots in the order they were added.
func (d *Document) Roots() []Node {
	return slices.Clone(d.roots)
}

// HasRoot reports whether a root with the given id is attached.
func (d *Document) HasRoot(id string) bool {
	return slices.ContainsFunc(d.roots, func(r Node) bool { return r.ID() == id })
}
