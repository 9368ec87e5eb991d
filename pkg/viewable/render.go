package viewable

import "github.com/matzehuels/panels/pkg/scene"

// Render materializes c as a new root of doc.
func Render(doc *scene.Document, c Component) (scene.Node, error) {
	node, err := c.Materialize(doc, nil, nil)
	if err != nil {
		return nil, err
	}
	doc.AddRoot(node)
	return node, nil
}

// Detach disposes everything c rendered under root and removes the root from
// doc.
func Detach(doc *scene.Document, c Component, root scene.Node) {
	c.Dispose(root)
	doc.RemoveRoot(root)
}

// Selector filters components during [Component.Select].
type Selector func(Component) bool

// OfType selects components of concrete type T.
func OfType[T Component]() Selector {
	return func(c Component) bool {
		_, ok := c.(T)
		return ok
	}
}

// Named selects components with the given name.
func Named(name string) Selector {
	return func(c Component) bool { return c.Name() == name }
}
