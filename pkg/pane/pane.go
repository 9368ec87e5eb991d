// Package pane turns arbitrary content into renderable components.
//
// [Wrap] is the single entry point used by every container: components pass
// through untouched, strings become [Markdown] panes and anything else is shown
// through its string form in a [Str] pane.
package pane

import (
	"fmt"
	"html"

	"github.com/matzehuels/panels/pkg/param"
	"github.com/matzehuels/panels/pkg/scene"
	"github.com/matzehuels/panels/pkg/viewable"
)

// Wrap returns content as a component. A component is returned as is, with
// its name replaced when name is not empty.
func Wrap(content any, name string) viewable.Component {
	var c viewable.Component
	switch v := content.(type) {
	case viewable.Component:
		c = v
	case string:
		c = NewMarkdown(v)
	default:
		c = NewStr(v)
	}
	c.SetName(name)
	return c
}

// Markup is a text-like leaf pane. Its object is rendered to the text property
// of a Markup node by the pane's format function.
type Markup struct {
	viewable.Base
	format func(any) string
}

func newMarkup(typeName string, object any, format func(any) string) *Markup {
	m := &Markup{format: format}
	m.Init(m, typeName, map[string]string{"object": ""}, nil,
		param.Decl{Name: "object"},
		param.Decl{Name: "style"},
	)
	_ = m.Params().Set("object", object)
	return m
}

// NewMarkdown creates a pane rendering markdown source.
func NewMarkdown(text string) *Markup {
	return newMarkup("Markdown", text, func(v any) string { s, _ := v.(string); return s })
}

// NewHTML creates a pane rendering raw HTML.
func NewHTML(text string) *Markup {
	return newMarkup("HTML", text, func(v any) string { s, _ := v.(string); return s })
}

// NewStr creates a pane showing the string form of any value.
func NewStr(v any) *Markup {
	return newMarkup("Str", v, func(v any) string {
		if v == nil {
			return "<pre>None</pre>"
		}
		return "<pre>" + html.EscapeString(fmt.Sprint(v)) + "</pre>"
	})
}

// Object returns the wrapped content.
func (m *Markup) Object() any { return m.Params().Get("object") }

// SetObject replaces the wrapped content; live nodes receive the new text.
func (m *Markup) SetObject(v any) error { return m.Params().Set("object", v) }

// Text returns the rendered text.
func (m *Markup) Text() string { return m.format(m.Object()) }

// Materialize implements [viewable.Component].
func (m *Markup) Materialize(doc *scene.Document, root, parent scene.Node) (scene.Node, error) {
	return m.MaterializeLeaf(doc, root, parent, scene.KindMarkup, scene.Props{"text": m.Text()})
}

// UpdateModel implements [viewable.ModelUpdater].
func (m *Markup) UpdateModel(events []param.Event, msg scene.Props, e viewable.Entry) error {
	for _, ev := range events {
		if ev.Name == "object" {
			msg["text"] = m.Text()
		}
	}
	if len(msg) == 0 {
		return nil
	}
	return e.Node.Update(msg)
}

// Repr implements [viewable.Component].
func (m *Markup) Repr(int) string {
	switch v := m.Object().(type) {
	case string:
		return fmt.Sprintf("%s(str)", m.TypeName())
	case nil:
		return fmt.Sprintf("%s(None)", m.TypeName())
	default:
		return fmt.Sprintf("%s(%T)", m.TypeName(), v)
	}
}
