package io

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/panels/pkg/errors"
	"github.com/matzehuels/panels/pkg/layout"
	"github.com/matzehuels/panels/pkg/pane"
	"github.com/matzehuels/panels/pkg/viewable"
)

// Dashboard is a decoded dashboard description.
type Dashboard struct {
	Title string
	Root  viewable.Component
}

// Grids returns every grid in the dashboard in depth-first order.
func (d *Dashboard) Grids() []*layout.GridSpec {
	var out []*layout.GridSpec
	for _, c := range d.Root.Select(viewable.OfType[*layout.GridSpec]()) {
		out = append(out, c.(*layout.GridSpec))
	}
	return out
}

type description struct {
	Title  string   `toml:"title"`
	Layout *element `toml:"layout"`
}

type element struct {
	Type       string    `toml:"type"`
	Name       string    `toml:"name"`
	Label      string    `toml:"label"`
	Text       string    `toml:"text"`
	Value      any       `toml:"value"`
	Width      *int      `toml:"width"`
	Height     *int      `toml:"height"`
	SizingMode string    `toml:"sizing_mode"`
	Active     *int      `toml:"active"`
	Rows       []int     `toml:"rows"`
	Cols       []int     `toml:"cols"`
	Children   []element `toml:"children"`
}

// ReadTOML decodes a dashboard description from r and builds its layout tree.
// ReadTOML does not close r.
func ReadTOML(r io.Reader) (*Dashboard, error) {
	var desc description
	md, err := toml.NewDecoder(r).Decode(&desc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown field %s", undecoded[0])
	}
	if desc.Layout == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing [layout] table")
	}

	root, err := build(*desc.Layout, "layout")
	if err != nil {
		return nil, err
	}
	return &Dashboard{Title: desc.Title, Root: root}, nil
}

// ImportTOML reads the dashboard description at path.
func ImportTOML(path string) (*Dashboard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTOML(f)
}

func build(e element, path string) (viewable.Component, error) {
	var c viewable.Component
	switch e.Type {
	case "row", "column":
		objs, err := buildChildren(e, path)
		if err != nil {
			return nil, err
		}
		if e.Type == "row" {
			c = layout.NewRow(objs...)
		} else {
			c = layout.NewColumn(objs...)
		}
	case "tabs":
		items := make([]any, len(e.Children))
		for i, ch := range e.Children {
			obj, err := build(ch, fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			if ch.Label != "" {
				items[i] = layout.Tab{Label: ch.Label, Content: obj}
			} else {
				items[i] = obj
			}
		}
		tabs := layout.NewTabs(items...)
		if e.Active != nil {
			if err := tabs.SetActive(*e.Active); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		c = tabs
	case "grid":
		g, err := buildGrid(e, path)
		if err != nil {
			return nil, err
		}
		c = g
	case "spacer":
		c = layout.NewSpacer()
	case "vspacer":
		c = layout.NewVSpacer()
	case "hspacer":
		c = layout.NewHSpacer()
	case "markdown":
		c = pane.NewMarkdown(e.Text)
	case "html":
		c = pane.NewHTML(e.Text)
	case "str":
		c = pane.NewStr(e.Value)
	case "":
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s: missing type", path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidType, "%s: unknown type %q", path, e.Type)
	}

	c.SetName(e.Name)
	if err := applyProps(c, e); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func buildChildren(e element, path string) ([]any, error) {
	objs := make([]any, len(e.Children))
	for i, ch := range e.Children {
		obj, err := build(ch, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		objs[i] = obj
	}
	return objs, nil
}

func buildGrid(e element, path string) (*layout.GridSpec, error) {
	g := layout.NewGridSpec()
	for i, ch := range e.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		obj, err := build(ch, childPath)
		if err != nil {
			return nil, err
		}
		rows, err := index(ch.Rows)
		if err != nil {
			return nil, fmt.Errorf("%s.rows: %w", childPath, err)
		}
		cols, err := index(ch.Cols)
		if err != nil {
			return nil, fmt.Errorf("%s.cols: %w", childPath, err)
		}
		if err := g.Set(rows, cols, obj); err != nil {
			return nil, fmt.Errorf("%s: %w", childPath, err)
		}
	}
	return g, nil
}

func index(v []int) (layout.Index, error) {
	switch len(v) {
	case 0:
		return layout.All(), nil
	case 1:
		return layout.At(v[0]), nil
	case 2:
		return layout.Span(v[0], v[1]), nil
	}
	return layout.Index{}, errors.New(errors.ErrCodeInvalidInput, "want at most two bounds, got %d", len(v))
}

func applyProps(c viewable.Component, e element) error {
	props := make(map[string]any)
	if e.Width != nil {
		props["width"] = *e.Width
	}
	if e.Height != nil {
		props["height"] = *e.Height
	}
	if e.SizingMode != "" {
		props["sizing_mode"] = e.SizingMode
	}
	if len(props) == 0 {
		return nil
	}
	return c.Params().Update(props)
}
