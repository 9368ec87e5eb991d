package layout

import "github.com/matzehuels/panels/pkg/scene"

// Row lays out its children horizontally.
type Row struct {
	ListPanel
}

// NewRow creates a row holding objects, wrapping any non-component content.
func NewRow(objects ...any) *Row {
	r := &Row{}
	r.initList(r, "Row", scene.KindRow, "children", nil, objects)
	return r
}

// Column lays out its children vertically.
type Column struct {
	ListPanel
}

// NewColumn creates a column holding objects, wrapping any non-component
// content.
func NewColumn(objects ...any) *Column {
	c := &Column{}
	c.initList(c, "Column", scene.KindColumn, "children", nil, objects)
	return c
}
