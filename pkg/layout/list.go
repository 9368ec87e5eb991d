package layout

import (
	"iter"
	"slices"

	"github.com/matzehuels/panels/pkg/errors"
	"github.com/matzehuels/panels/pkg/pane"
	"github.com/matzehuels/panels/pkg/param"
	"github.com/matzehuels/panels/pkg/scene"
	"github.com/matzehuels/panels/pkg/viewable"
)

// ListPanel is a container with ordered children.
//
// Every mutation builds the full replacement collection and assigns it in a
// single write; the collection is never modified in place.
type ListPanel struct {
	Panel
}

func objectsDecl() param.Decl {
	return param.Decl{
		Name:    "objects",
		Factory: func() any { return []viewable.Component{} },
		Doc:     "The list of child objects that make up the layout.",
	}
}

func (l *ListPanel) initList(self viewable.Component, typeName string, kind scene.Kind, childrenProp string, linked []string, objects []any, decls ...param.Decl) {
	decls = append([]param.Decl{objectsDecl()}, decls...)
	l.init(self, typeName, kind, childrenProp, linked, decls...)
	l.reconcile = l.reconcileList
	l.children = l.objects

	wrapped := make([]viewable.Component, len(objects))
	for i, o := range objects {
		wrapped[i] = pane.Wrap(o, "")
	}
	_ = l.Params().Set("objects", wrapped)
}

// objects returns the live collection.
func (l *ListPanel) objects() []viewable.Component {
	return param.Get[[]viewable.Component](l.Params(), "objects")
}

func (l *ListPanel) setObjects(objs []viewable.Component) error {
	return l.Params().Set("objects", objs)
}

// Objects returns a copy of the children.
func (l *ListPanel) Objects() []viewable.Component {
	return slices.Clone(l.objects())
}

// SetObjects replaces the children directly, bypassing the mutation API.
func (l *ListPanel) SetObjects(objs []viewable.Component) error {
	return l.setObjects(slices.Clone(objs))
}

// Len returns the number of children.
func (l *ListPanel) Len() int { return len(l.objects()) }

// At returns the child at index i. Negative indexes count from the end.
func (l *ListPanel) At(i int) (viewable.Component, error) {
	objs := l.objects()
	i, err := errors.CheckIndex(l.TypeName(), i, len(objs))
	if err != nil {
		return nil, err
	}
	return objs[i], nil
}

// All iterates over the children in order.
func (l *ListPanel) All() iter.Seq2[int, viewable.Component] {
	return func(yield func(int, viewable.Component) bool) {
		for i, c := range l.Objects() {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Index returns the position of x among the children by identity, or -1.
func (l *ListPanel) Index(x any) int {
	return slices.IndexFunc(l.objects(), func(c viewable.Component) bool { return same(c, x) })
}

// Contains reports whether x is one of the children.
func (l *ListPanel) Contains(x any) bool { return l.Index(x) >= 0 }

// Set replaces the child at index i with content.
func (l *ListPanel) Set(i int, content any) error {
	objs := l.Objects()
	i, err := errors.CheckIndex(l.TypeName(), i, len(objs))
	if err != nil {
		return err
	}
	objs[i] = pane.Wrap(content, "")
	return l.setObjects(objs)
}

// SetSlice replaces the children in [start:stop) with contents, which must
// hold exactly stop-start values.
func (l *ListPanel) SetSlice(start, stop int, contents []any) error {
	objs := l.Objects()
	if err := errors.CheckSlice(l.TypeName(), start, stop, len(objs), len(contents)); err != nil {
		return err
	}
	for i, c := range contents {
		objs[start+i] = pane.Wrap(c, "")
	}
	return l.setObjects(objs)
}

// Replace replaces the whole collection with contents.
func (l *ListPanel) Replace(contents []any) error {
	objs := make([]viewable.Component, len(contents))
	for i, c := range contents {
		objs[i] = pane.Wrap(c, "")
	}
	return l.setObjects(objs)
}

// Append adds content at the end.
func (l *ListPanel) Append(content any) error {
	return l.setObjects(append(l.Objects(), pane.Wrap(content, "")))
}

// Extend adds every content at the end.
func (l *ListPanel) Extend(contents ...any) error {
	objs := l.Objects()
	for _, c := range contents {
		objs = append(objs, pane.Wrap(c, ""))
	}
	return l.setObjects(objs)
}

// Insert adds content before index i. Indexes past either end are clamped.
func (l *ListPanel) Insert(i int, content any) error {
	objs := l.Objects()
	return l.setObjects(slices.Insert(objs, clampInsert(i, len(objs)), pane.Wrap(content, "")))
}

// Pop removes and returns a child. If x is a child it is removed by
// identity; otherwise x must be an int position.
func (l *ListPanel) Pop(x any) (viewable.Component, error) {
	objs := l.Objects()
	i, err := l.popIndex(x, objs)
	if err != nil {
		return nil, err
	}
	c := objs[i]
	return c, l.setObjects(slices.Delete(objs, i, i+1))
}

func (l *ListPanel) popIndex(x any, objs []viewable.Component) (int, error) {
	if i := slices.IndexFunc(objs, func(c viewable.Component) bool { return same(c, x) }); i >= 0 {
		return i, nil
	}
	if _, ok := x.(viewable.Component); ok {
		return 0, errors.New(errors.ErrCodeNotFound, "%s.Pop: object not in %s", l.TypeName(), l.TypeName())
	}
	pos, ok := x.(int)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidType, "%s.Pop expects a child or an int index, got %T", l.TypeName(), x)
	}
	return errors.CheckIndex(l.TypeName(), pos, len(objs))
}

// Remove removes the child x.
func (l *ListPanel) Remove(x any) error {
	objs := l.Objects()
	i := slices.IndexFunc(objs, func(c viewable.Component) bool { return same(c, x) })
	if i < 0 {
		return errors.New(errors.ErrCodeNotFound, "%s.Remove: object not in %s", l.TypeName(), l.TypeName())
	}
	return l.setObjects(slices.Delete(objs, i, i+1))
}

// Reverse reverses the order of the children.
func (l *ListPanel) Reverse() error {
	objs := l.Objects()
	slices.Reverse(objs)
	return l.setObjects(objs)
}

// Clear removes every child.
func (l *ListPanel) Clear() error {
	return l.setObjects([]viewable.Component{})
}

// same compares a child with an arbitrary value by identity.
func same(c viewable.Component, x any) bool {
	other, ok := x.(viewable.Component)
	return ok && other == c
}

func clampInsert(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}
