package scene

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Memory is an in-process backend. Nodes live until disposed.
type Memory struct {
	nodes   map[string]*MemNode
	order   []string
	created int
	failing error
}

// NewMemory creates an empty memory backend.
func NewMemory() *Memory {
	return &Memory{nodes: make(map[string]*MemNode)}
}

// Create implements [Backend].
func (m *Memory) Create(kind Kind, props Props) (Node, error) {
	if _, ok := Kinds[kind]; !ok {
		return nil, fmt.Errorf("unknown node kind %q", kind)
	}
	n := &MemNode{
		id:        uuid.NewString(),
		kind:      kind,
		props:     props.Clone(),
		backend:   m,
		listeners: make(map[string][]*listener),
	}
	m.nodes[n.id] = n
	m.order = append(m.order, n.id)
	m.created++
	return n, nil
}

// FailUpdates makes every subsequent Update return err. Pass nil to recover.
func (m *Memory) FailUpdates(err error) { m.failing = err }

// Node returns the live node with the given id.
func (m *Memory) Node(id string) (*MemNode, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// Nodes returns the live nodes in creation order.
func (m *Memory) Nodes() []*MemNode {
	out := make([]*MemNode, 0, len(m.nodes))
	for _, id := range m.order {
		if n, ok := m.nodes[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of live nodes.
func (m *Memory) Len() int { return len(m.nodes) }

// Created returns the total number of nodes ever created.
func (m *Memory) Created() int { return m.created }

type listener struct {
	fn func(old, new any)
}

// MemNode is a node owned by a [Memory] backend.
type MemNode struct {
	id        string
	kind      Kind
	props     Props
	backend   *Memory
	listeners map[string][]*listener
	updates   []Props
	disposed  int
}

// ID implements [Node].
func (n *MemNode) ID() string { return n.id }

// Kind implements [Node].
func (n *MemNode) Kind() Kind { return n.kind }

// Get implements [Node].
func (n *MemNode) Get(name string) any { return n.props[name] }

// Props returns a copy of all property values.
func (n *MemNode) Props() Props { return n.props.Clone() }

// Update implements [Node]. Every call is recorded.
func (n *MemNode) Update(props Props) error {
	if err := n.backend.failing; err != nil {
		return err
	}
	for k, v := range props {
		n.props[k] = v
	}
	n.updates = append(n.updates, props.Clone())
	return nil
}

// Updates returns the recorded update batches in order.
func (n *MemNode) Updates() []Props { return slices.Clone(n.updates) }

// OnChange implements [Node].
func (n *MemNode) OnChange(name string, fn func(old, new any)) func() {
	l := &listener{fn: fn}
	n.listeners[name] = append(n.listeners[name], l)
	return func() {
		n.listeners[name] = slices.DeleteFunc(n.listeners[name], func(x *listener) bool { return x == l })
	}
}

// Emit simulates a change originating on the display surface, such as a user
// clicking a tab. Listeners registered with OnChange are notified; recorded
// updates are not affected.
func (n *MemNode) Emit(name string, value any) {
	old := n.props[name]
	n.props[name] = value
	for _, l := range slices.Clone(n.listeners[name]) {
		l.fn(old, value)
	}
}

// Dispose implements [Node].
func (n *MemNode) Dispose() {
	if _, live := n.backend.nodes[n.id]; !live {
		return
	}
	delete(n.backend.nodes, n.id)
	n.listeners = make(map[string][]*listener)
	n.disposed++
}

// Disposed reports how many times the node was actually disposed. A correct
// caller never drives this above one.
func (n *MemNode) Disposed() int { return n.disposed }

var _ Backend = (*Memory)(nil)
var _ Node = (*MemNode)(nil)
