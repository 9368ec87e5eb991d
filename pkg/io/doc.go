// Package io reads dashboard descriptions and writes scene graphs.
//
// # Overview
//
// Dashboards are described declaratively in TOML and turned into a tree of
// layout components by [ReadTOML] or [ImportTOML]. Once the tree has been
// materialized into a backend, [WriteJSON] and [ExportJSON] serialize the
// resulting scene graph for external tools.
//
// # TOML Format
//
// A description has an optional title and one root element under [layout]:
//
//	title = "Sales"
//
//	[layout]
//	type = "column"
//
//	[[layout.children]]
//	type = "markdown"
//	text = "# Sales"
//
//	[[layout.children]]
//	type = "grid"
//	width = 800
//
//	[[layout.children.children]]
//	type = "str"
//	value = 42
//	rows = [0, 2]
//	cols = [0, 1]
//
// # Element Fields
//
// Required:
//   - type: row, column, tabs, grid, spacer, vspacer, hspacer, markdown, html or str
//
// Optional:
//   - name: component name (tabs use it as the default label)
//   - label: tab label, only meaningful for direct children of tabs
//   - text: source of markdown and html panes
//   - value: object of a str pane
//   - width, height, sizing_mode: sizing properties
//   - active: selected tab index
//   - rows, cols: grid placement of a direct child of a grid; one element
//     addresses a single row or column, two a half-open [start, stop) range,
//     and an omitted field spans the whole axis
//   - children: nested elements of containers
//
// Decoding fails with an INVALID_TYPE error for an unknown type and an
// INVALID_INPUT error for malformed fields. Grid placements are validated by
// the grid itself, so overlaps surface as OVERLAP errors.
//
// # Export
//
// [WriteJSON] writes the scene graph under a root node as nested objects:
//
//	{
//	  "id": "5b0c...",
//	  "kind": "Row",
//	  "props": {"name": "Row00012"},
//	  "children": [
//	    {"id": "9e1f...", "kind": "Markup", "props": {"text": "A"}}
//	  ]
//	}
//
// Structural properties become the children array; children of grid boxes
// carry their placement under "grid". Only nodes that expose their property
// set, such as those of the in-memory backend, export props.
package io
