package scene

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"
)

// structural properties that are drawn as edges rather than labels
var structural = map[string]bool{"children": true, "tabs": true, "child": true}

// ToDOT converts the scene graph under root to Graphviz DOT format.
// Each node is labelled with its kind and its scalar properties; edges follow
// child order. Grid children carry their placement as the edge label.
func ToDOT(root Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph scene {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	seen := make(map[string]bool)
	var walk func(n Node)
	walk = func(n Node) {
		if seen[n.ID()] {
			return
		}
		seen[n.ID()] = true
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID(), fmtLabel(n))

		info := Kinds[n.Kind()]
		if grid, ok := n.Get(info.Children).([]GridChild); ok {
			for _, c := range grid {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", n.ID(), c.Node.ID(),
					fmt.Sprintf("%d,%d %dx%d", c.Row, c.Col, c.RowSpan, c.ColSpan))
				walk(c.Node)
			}
			return
		}
		for _, c := range Children(n) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.ID(), c.ID())
			walk(c)
		}
	}
	walk(root)

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n Node) string {
	parts := []string{string(n.Kind())}
	mn, ok := n.(*MemNode)
	if !ok {
		return parts[0]
	}
	props := mn.Props()
	for _, k := range slices.Sorted(maps.Keys(props)) {
		if structural[k] || props[k] == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", k, props[k]))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
