package layout

import (
	"slices"
	"time"

	"github.com/matzehuels/panels/pkg/errors"
	"github.com/matzehuels/panels/pkg/observability"
	"github.com/matzehuels/panels/pkg/pane"
	"github.com/matzehuels/panels/pkg/param"
	"github.com/matzehuels/panels/pkg/scene"
	"github.com/matzehuels/panels/pkg/viewable"
)

// Tab is a labelled item for [Tabs]. Items passed without a Tab take their
// label from the content's name, or its type name when the name was generated.
type Tab struct {
	Label   string
	Content any
}

// Tabs shows each child in its own labelled tab.
//
// Labels are kept index-aligned with the children. The label-aware methods
// of Tabs update both together; any other change to the objects property
// that alters the number of children realigns the labels before the tabs
// are reconciled.
type Tabs struct {
	ListPanel
	names []string

	// wrappers holds, per root id, the tab panel node wrapping each child.
	wrappers map[string]map[tabKey]scene.Node
}

// tabKey identifies the n-th occurrence of a child, so that a child placed
// in several tabs gets one tab panel per tab.
type tabKey struct {
	c viewable.Component
	n int
}

// NewTabs creates tabs from items, each a [Tab] or bare content.
func NewTabs(items ...any) *Tabs {
	t := &Tabs{wrappers: make(map[string]map[tabKey]scene.Node)}
	objs, names := toObjectsAndNames(items)
	t.names = names

	contents := make([]any, len(objs))
	for i, o := range objs {
		contents[i] = o
	}
	t.initList(t, "Tabs", scene.KindTabs, "tabs", []string{"active"}, contents,
		param.Decl{Name: "active", Default: 0, Validate: param.NonNegative, Doc: "Index of the currently active tab."},
	)
	t.reconcile = t.reconcileTabs
	t.Params().Watch(t.syncNames, param.PrecedenceSync, "objects")
	return t
}

func toObjectAndName(item any) (viewable.Component, string) {
	if tab, ok := item.(Tab); ok {
		c := pane.Wrap(tab.Content, tab.Label)
		if tab.Label == "" {
			return c, defaultLabel(c)
		}
		return c, tab.Label
	}
	c := pane.Wrap(item, "")
	return c, defaultLabel(c)
}

// defaultLabel returns the name of c, or its type name when the name was
// generated.
func defaultLabel(c viewable.Component) string {
	if a, ok := c.(interface{ HasAutoName() bool }); ok && a.HasAutoName() {
		return c.TypeName()
	}
	return c.Name()
}

func toObjectsAndNames(items []any) ([]viewable.Component, []string) {
	objs := make([]viewable.Component, len(items))
	names := make([]string, len(items))
	for i, item := range items {
		objs[i], names[i] = toObjectAndName(item)
	}
	return objs, names
}

// Names returns the tab labels.
func (t *Tabs) Names() []string { return slices.Clone(t.names) }

// Active returns the index of the active tab.
func (t *Tabs) Active() int { return param.Get[int](t.Params(), "active") }

// SetActive selects the active tab.
func (t *Tabs) SetActive(i int) error { return t.Params().Set("active", i) }

// syncNames realigns labels after a change of objects that did not go
// through a label-aware method. Surviving children keep the label of their
// first occurrence in the old collection.
func (t *Tabs) syncNames(events []param.Event) error {
	for _, ev := range events {
		old, _ := ev.Old.([]viewable.Component)
		cur, _ := ev.New.([]viewable.Component)
		if len(cur) == len(t.names) {
			continue
		}
		names := make([]string, 0, len(cur))
		for _, c := range cur {
			switch i := slices.Index(old, c); {
			case c == nil:
				names = append(names, "")
			case i >= 0 && i < len(t.names):
				names = append(names, t.names[i])
			default:
				names = append(names, defaultLabel(c))
			}
		}
		t.names = names
	}
	return nil
}

// reconcileTabs reconciles children and wraps each child node in a tab panel
// carrying its label.
func (t *Tabs) reconcileTabs(e viewable.Entry, old any) (any, error) {
	prev, _ := old.([]viewable.Component)
	objs := t.objects()
	if len(t.names) != len(objs) {
		return nil, errors.New(errors.ErrCodeInvariant,
			"tab names do not match objects, ensure that Tabs objects are not modified directly: found %d names, expected %d",
			len(t.names), len(objs))
	}

	start := time.Now()
	var stats observability.ReconcileStats
	rootID := e.Root.ID()
	cached := t.wrappers[rootID]
	next := make(map[tabKey]scene.Node, len(objs))
	seen := make(map[viewable.Component]int, len(objs))
	nodes := make([]scene.Node, 0, len(objs))
	fail := func(err error) (any, error) {
		for key, w := range next {
			if cached[key] != w {
				w.Dispose()
			}
		}
		return nil, err
	}
	for i, obj := range objs {
		c := pane.Wrap(obj, t.names[i])
		objs[i] = c
		child, err := t.childNode(e, c, &stats)
		if err != nil {
			return fail(err)
		}
		key := tabKey{c, seen[c]}
		seen[c]++
		w, err := tabPanel(e.Doc, cached[key], t.names[i], c.Name(), child)
		if err != nil {
			return fail(err)
		}
		next[key] = w
		nodes = append(nodes, w)
	}
	for key, w := range cached {
		if _, ok := next[key]; !ok {
			w.Dispose()
		}
	}
	t.wrappers[rootID] = next

	stats.Disposed = disposeDropped(e.Root, prev, objs)
	t.logReconcile(e, stats, time.Since(start))
	return nodes, nil
}

// tabPanel returns a tab panel node for child, updating w when it exists.
func tabPanel(doc *scene.Document, w scene.Node, title, name string, child scene.Node) (scene.Node, error) {
	if w == nil {
		return doc.Backend.Create(scene.KindTabPanel, scene.Props{"title": title, "name": name, "child": child})
	}
	props := scene.Props{}
	if w.Get("title") != title {
		props["title"] = title
	}
	if w.Get("name") != name {
		props["name"] = name
	}
	if w.Get("child") != child {
		props["child"] = child
	}
	if len(props) == 0 {
		return w, nil
	}
	return w, w.Update(props)
}

// Dispose implements [viewable.Component].
func (t *Tabs) Dispose(root scene.Node) {
	t.Panel.Dispose(root)
	for _, w := range t.wrappers[root.ID()] {
		w.Dispose()
	}
	delete(t.wrappers, root.ID())
}

// Repr implements [viewable.Component]. Children are labelled with their tab
// label.
func (t *Tabs) Repr(depth int) string {
	labels := make([]string, len(t.objects()))
	for i := range labels {
		if i < len(t.names) {
			labels[i] = "[" + t.names[i] + "]"
		}
	}
	return t.repr(depth, labels)
}

// commit assigns objects and their labels as one change.
func (t *Tabs) commit(objs []viewable.Component, names []string) error {
	t.names = names
	return t.setObjects(objs)
}

// Set replaces the tab at index i with item.
func (t *Tabs) Set(i int, item any) error {
	objs, names := t.Objects(), t.Names()
	i, err := errors.CheckIndex(t.TypeName(), i, len(objs))
	if err != nil {
		return err
	}
	objs[i], names[i] = toObjectAndName(item)
	return t.commit(objs, names)
}

// SetSlice replaces the tabs in [start:stop) with items, which must hold
// exactly stop-start values.
func (t *Tabs) SetSlice(start, stop int, items []any) error {
	objs, names := t.Objects(), t.Names()
	if err := errors.CheckSlice(t.TypeName(), start, stop, len(objs), len(items)); err != nil {
		return err
	}
	for i, item := range items {
		objs[start+i], names[start+i] = toObjectAndName(item)
	}
	return t.commit(objs, names)
}

// Replace replaces every tab with items.
func (t *Tabs) Replace(items []any) error {
	return t.commit(toObjectsAndNames(items))
}

// Append adds a tab at the end.
func (t *Tabs) Append(item any) error {
	c, name := toObjectAndName(item)
	return t.commit(append(t.Objects(), c), append(t.Names(), name))
}

// Extend adds every item as a tab at the end.
func (t *Tabs) Extend(items ...any) error {
	objs, names := toObjectsAndNames(items)
	return t.commit(append(t.Objects(), objs...), append(t.Names(), names...))
}

// Insert adds a tab before index i. Indexes past either end are clamped.
func (t *Tabs) Insert(i int, item any) error {
	c, name := toObjectAndName(item)
	objs, names := t.Objects(), t.Names()
	i = clampInsert(i, len(objs))
	return t.commit(slices.Insert(objs, i, c), slices.Insert(names, i, name))
}

// Pop removes and returns a tab's content. If x is a child it is removed by
// identity; otherwise x must be an int position.
func (t *Tabs) Pop(x any) (viewable.Component, error) {
	objs, names := t.Objects(), t.Names()
	i, err := t.popIndex(x, objs)
	if err != nil {
		return nil, err
	}
	c := objs[i]
	return c, t.commit(slices.Delete(objs, i, i+1), slices.Delete(names, i, i+1))
}

// Remove removes the tab holding x.
func (t *Tabs) Remove(x any) error {
	i := t.Index(x)
	if i < 0 {
		return errors.New(errors.ErrCodeNotFound, "Tabs.Remove: object not in Tabs")
	}
	objs, names := t.Objects(), t.Names()
	return t.commit(slices.Delete(objs, i, i+1), slices.Delete(names, i, i+1))
}

// Reverse reverses the order of the tabs.
func (t *Tabs) Reverse() error {
	objs, names := t.Objects(), t.Names()
	slices.Reverse(objs)
	slices.Reverse(names)
	return t.commit(objs, names)
}

// Clear removes every tab.
func (t *Tabs) Clear() error {
	return t.commit([]viewable.Component{}, []string{})
}
