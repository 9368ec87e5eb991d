package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/panels/pkg/scene"
)

type node struct {
	ID       string         `json:"id"`
	Kind     string         `json:"kind"`
	Props    map[string]any `json:"props,omitempty"`
	Grid     *placement     `json:"grid,omitempty"`
	Children []node         `json:"children,omitempty"`
}

type placement struct {
	Row     int `json:"row"`
	Col     int `json:"col"`
	RowSpan int `json:"row_span"`
	ColSpan int `json:"col_span"`
}

// propser is implemented by nodes that expose their full property set.
type propser interface {
	Props() scene.Props
}

// WriteJSON encodes the scene graph under root as JSON and writes it to w.
func WriteJSON(root scene.Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toNode(root)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the scene graph under root to a JSON file at path.
func ExportJSON(root scene.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(root, f)
}

func toNode(n scene.Node) node {
	out := node{ID: n.ID(), Kind: string(n.Kind())}
	structural := scene.Kinds[n.Kind()].Children

	if p, ok := n.(propser); ok {
		for k, v := range p.Props() {
			if k == structural || v == nil {
				continue
			}
			if out.Props == nil {
				out.Props = make(map[string]any)
			}
			out.Props[k] = v
		}
	}

	if grid, ok := n.Get(structural).([]scene.GridChild); ok && structural != "" {
		for _, c := range grid {
			child := toNode(c.Node)
			child.Grid = &placement{Row: c.Row, Col: c.Col, RowSpan: c.RowSpan, ColSpan: c.ColSpan}
			out.Children = append(out.Children, child)
		}
		return out
	}
	for _, c := range scene.Children(n) {
		out.Children = append(out.Children, toNode(c))
	}
	return out
}
