package param

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/matzehuels/panels/pkg/errors"
)

// Precedence orders watchers on the same bag. Lower values run first.
type Precedence int

const (
	// PrecedenceSync is used for watchers that keep auxiliary state aligned
	// with a property before anything observes the new value.
	PrecedenceSync Precedence = -20
	// PrecedenceModel is used for the watcher that reconciles backend models.
	PrecedenceModel Precedence = -10
	// PrecedenceDefault is the precedence of ordinary watchers.
	PrecedenceDefault Precedence = 0
)

// Decl declares a property.
type Decl struct {
	Name     string
	Default  any
	Factory  func() any // per-instance default; takes priority over Default
	ReadOnly bool
	Validate func(v any) error
	Doc      string
}

func (d Decl) initial() any {
	if d.Factory != nil {
		return d.Factory()
	}
	return d.Default
}

// Event describes a single property change.
type Event struct {
	Name string
	Old  any
	New  any
}

// Watcher receives every batch of events it subscribed to.
type Watcher func(events []Event) error

type watcher struct {
	id         int
	precedence Precedence
	names      map[string]bool // nil subscribes to every property
	fn         Watcher
}

// Bag holds the declared properties of one component instance.
type Bag struct {
	owner    string
	decls    []Decl
	index    map[string]int
	values   map[string]any
	watchers []*watcher
	nextID   int
}

// NewBag creates a bag for owner with the given declarations. Every property
// starts at its default.
func NewBag(owner string, decls ...Decl) *Bag {
	b := &Bag{
		owner:  owner,
		index:  make(map[string]int),
		values: make(map[string]any),
	}
	b.Declare(decls...)
	return b
}

// Owner returns the name used for the bag in error messages.
func (b *Bag) Owner() string { return b.owner }

// SetOwner renames the bag owner. Components embedding a base call this once
// they know their concrete type.
func (b *Bag) SetOwner(owner string) { b.owner = owner }

// Declare adds declarations, replacing any earlier declaration of the same
// name and resetting its value to the new default.
func (b *Bag) Declare(decls ...Decl) {
	for _, d := range decls {
		if i, ok := b.index[d.Name]; ok {
			b.decls[i] = d
		} else {
			b.index[d.Name] = len(b.decls)
			b.decls = append(b.decls, d)
		}
		b.values[d.Name] = d.initial()
	}
}

// Names returns the declared property names in declaration order.
func (b *Bag) Names() []string {
	names := make([]string, len(b.decls))
	for i, d := range b.decls {
		names[i] = d.Name
	}
	return names
}

// Has reports whether name is declared.
func (b *Bag) Has(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Decl returns the declaration for name.
func (b *Bag) Decl(name string) (Decl, bool) {
	i, ok := b.index[name]
	if !ok {
		return Decl{}, false
	}
	return b.decls[i], true
}

// Get returns the current value of name, or nil if it is not declared.
func (b *Bag) Get(name string) any {
	return b.values[name]
}

// IsDefault reports whether name still holds a value equal to its default.
// Properties with a factory are never reported as default.
func (b *Bag) IsDefault(name string) bool {
	d, ok := b.Decl(name)
	if !ok || d.Factory != nil {
		return false
	}
	return equal(d.Default, b.values[name])
}

// Set writes a single property. See [Bag.Update].
func (b *Bag) Set(name string, v any) error {
	return b.Update(map[string]any{name: v})
}

// Update writes several properties as one batch. All values are validated
// before any is applied. Watchers are then called once, in precedence order,
// with the events they subscribed to. Values equal to the current value
// produce no event.
func (b *Bag) Update(values map[string]any) error {
	for name, v := range values {
		d, ok := b.Decl(name)
		if !ok {
			return errors.New(errors.ErrCodeNotFound, "%s has no property %q", b.owner, name)
		}
		if d.ReadOnly {
			return errors.New(errors.ErrCodeReadOnly, "%s.%s is read-only", b.owner, name)
		}
		if d.Validate != nil && v != nil {
			if err := d.Validate(v); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s.%s", b.owner, name)
			}
		}
	}

	var events []Event
	for _, d := range b.decls {
		v, ok := values[d.Name]
		if !ok {
			continue
		}
		old := b.values[d.Name]
		if equal(old, v) {
			continue
		}
		b.values[d.Name] = v
		events = append(events, Event{Name: d.Name, Old: old, New: v})
	}
	if len(events) == 0 {
		return nil
	}
	return b.dispatch(events)
}

// Trigger notifies watchers of name as if it had been set to its current value.
func (b *Bag) Trigger(name string) error {
	if !b.Has(name) {
		return errors.New(errors.ErrCodeNotFound, "%s has no property %q", b.owner, name)
	}
	v := b.values[name]
	return b.dispatch([]Event{{Name: name, Old: v, New: v}})
}

func (b *Bag) dispatch(events []Event) error {
	// Snapshot so watchers may register or unregister during dispatch.
	ws := slices.Clone(b.watchers)
	for _, w := range ws {
		batch := events
		if w.names != nil {
			batch = nil
			for _, ev := range events {
				if w.names[ev.Name] {
					batch = append(batch, ev)
				}
			}
		}
		if len(batch) == 0 {
			continue
		}
		if err := w.fn(batch); err != nil {
			return err
		}
	}
	return nil
}

// Watch registers fn for changes to names (all properties when names is
// empty) and returns a function that removes the watcher.
func (b *Bag) Watch(fn Watcher, precedence Precedence, names ...string) func() {
	b.nextID++
	w := &watcher{id: b.nextID, precedence: precedence, fn: fn}
	if len(names) > 0 {
		w.names = make(map[string]bool, len(names))
		for _, n := range names {
			w.names[n] = true
		}
	}
	i, _ := slices.BinarySearchFunc(b.watchers, w, func(a, t *watcher) int {
		if a.precedence != t.precedence {
			return int(a.precedence - t.precedence)
		}
		return a.id - t.id
	})
	b.watchers = slices.Insert(b.watchers, i, w)

	id := w.id
	return func() {
		b.watchers = slices.DeleteFunc(b.watchers, func(w *watcher) bool { return w.id == id })
	}
}

// Value is a name/value pair.
type Value struct {
	Name  string
	Value any
}

// Values returns the current values in declaration order.
func (b *Bag) Values() []Value {
	out := make([]Value, len(b.decls))
	for i, d := range b.decls {
		out[i] = Value{Name: d.Name, Value: b.values[d.Name]}
	}
	return out
}

// Get returns the value of name converted to T, or the zero value when the
// property is unset or holds another type.
func Get[T any](b *Bag, name string) T {
	v, _ := b.Get(name).(T)
	return v
}

// equal compares two property values. Values of non-comparable types (slices,
// maps) are always considered different so collection writes always notify.
// So are structs and arrays whose interface fields hold such values.
func equal(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// NonNegative validates that an integer property is >= 0.
func NonNegative(v any) error {
	n, ok := v.(int)
	if !ok {
		return fmt.Errorf("expected int, got %T", v)
	}
	if n < 0 {
		return fmt.Errorf("value %d below lower bound 0", n)
	}
	return nil
}

// OneOf returns a validator accepting only the given strings.
func OneOf(allowed ...string) func(any) error {
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", v)
		}
		if !slices.Contains(allowed, s) {
			return fmt.Errorf("%q not one of %v", s, allowed)
		}
		return nil
	}
}
