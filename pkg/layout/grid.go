package layout

import (
	"maps"
	"slices"
	"time"

	"github.com/matzehuels/panels/pkg/errors"
	"github.com/matzehuels/panels/pkg/observability"
	"github.com/matzehuels/panels/pkg/pane"
	"github.com/matzehuels/panels/pkg/param"
	"github.com/matzehuels/panels/pkg/scene"
	"github.com/matzehuels/panels/pkg/viewable"
)

// Default pixel size of a grid.
const (
	DefaultGridWidth  = 600
	DefaultGridHeight = 600
)

// GridItem is one placed child of a [GridSpec].
type GridItem struct {
	Region Region
	Object viewable.Component
}

// GridSpec places children on non-overlapping rectangular regions of an
// integer grid. The grid extent is the largest closed end bound on each
// axis; open bounds stretch to that extent.
type GridSpec struct {
	Panel
}

// NewGridSpec creates an empty grid.
func NewGridSpec() *GridSpec {
	g := &GridSpec{}
	g.init(g, "GridSpec", scene.KindGridBox, "children", nil,
		param.Decl{
			Name:    "objects",
			Factory: func() any { return []GridItem{} },
			Doc:     "The placed child objects that make up the grid, in insertion order.",
		},
		param.Decl{Name: "width", Default: DefaultGridWidth, Validate: param.NonNegative},
		param.Decl{Name: "height", Default: DefaultGridHeight, Validate: param.NonNegative},
	)
	g.reconcile = g.reconcileGrid
	g.initProps = g.initProperties
	g.children = g.Objects
	return g
}

func (g *GridSpec) items() []GridItem {
	return param.Get[[]GridItem](g.Params(), "objects")
}

func (g *GridSpec) setItems(items []GridItem) error {
	return g.Params().Set("objects", items)
}

// Items returns the placed children in insertion order.
func (g *GridSpec) Items() []GridItem { return slices.Clone(g.items()) }

// Objects returns the children in insertion order.
func (g *GridSpec) Objects() []viewable.Component {
	items := g.items()
	out := make([]viewable.Component, len(items))
	for i, it := range items {
		out[i] = it.Object
	}
	return out
}

// Regions returns the occupied regions in insertion order.
func (g *GridSpec) Regions() []Region {
	items := g.items()
	out := make([]Region, len(items))
	for i, it := range items {
		out[i] = it.Region
	}
	return out
}

// Len returns the number of placed children.
func (g *GridSpec) Len() int { return len(g.items()) }

// NRows returns the number of rows spanned by closed regions.
func (g *GridSpec) NRows() int { return nrows(g.items()) }

// NCols returns the number of columns spanned by closed regions.
func (g *GridSpec) NCols() int { return ncols(g.items()) }

func nrows(items []GridItem) int {
	n := 0
	for _, it := range items {
		if it.Region.RowEnd != Open {
			n = max(n, it.Region.RowEnd)
		}
	}
	return n
}

func ncols(items []GridItem) int {
	n := 0
	for _, it := range items {
		if it.Region.ColEnd != Open {
			n = max(n, it.Region.ColEnd)
		}
	}
	return n
}

// Grid returns the occupancy matrix: the number of regions covering each
// cell.
func (g *GridSpec) Grid() [][]int { return occupancy(g.items()) }

func occupancy(items []GridItem) [][]int {
	nr, nc := nrows(items), ncols(items)
	grid := make([][]int, nr)
	for i := range grid {
		grid[i] = make([]int, nc)
	}
	for _, it := range items {
		t, l, b, r := it.Region.resolve(nr, nc)
		for y := t; y < min(b, nr); y++ {
			for x := l; x < min(r, nc); x++ {
				grid[y][x]++
			}
		}
	}
	return grid
}

// owners returns, per cell of an nr x nc grid, the index of the last item
// covering it, or -1.
func owners(items []GridItem, nr, nc int) [][]int {
	grid := make([][]int, nr)
	for i := range grid {
		grid[i] = slices.Repeat([]int{-1}, nc)
	}
	for i, it := range items {
		t, l, b, r := it.Region.resolve(nr, nc)
		for y := t; y < min(b, nr); y++ {
			for x := l; x < min(r, nc); x++ {
				grid[y][x] = i
			}
		}
	}
	return grid
}

// Set places content on the region addressed by rows and cols. A region
// that intersects an occupied cell, including one equal to an existing
// region, is rejected with an [*errors.OverlapError] and leaves the grid
// unchanged. So is, with INVALID_INPUT, an open region that would cover no
// cell.
func (g *GridSpec) Set(rows, cols Index, content any) error {
	region, err := regionOf(rows, cols)
	if err != nil {
		return err
	}
	items := g.items()
	existing := slices.IndexFunc(items, func(it GridItem) bool { return it.Region == region })

	var grid [][]int
	next := items
	if existing >= 0 {
		grid = occupancy(items)
		t, l, b, r := region.resolve(len(grid), ncols(items))
		for y := t; y < min(b, len(grid)); y++ {
			for x := l; x < min(r, len(grid[y])); x++ {
				grid[y][x]++
			}
		}
	} else {
		next = append(slices.Clone(items), GridItem{Region: region, Object: pane.Wrap(content, "")})
		grid = occupancy(next)
	}
	if err := checkExtents(next); err != nil {
		return err
	}
	if cs := conflicts(grid, items, ncols(next)); len(cs) > 0 {
		return &errors.OverlapError{Conflicts: cs, Map: FormatGrid(grid)}
	}
	return g.setItems(next)
}

// conflicts lists, once each, the existing items covering a cell of grid
// with a count above one, together with the first such cell.
func conflicts(grid [][]int, items []GridItem, nc int) []errors.Conflict {
	own := owners(items, len(grid), nc)
	seen := make(map[int]bool)
	var out []errors.Conflict
	for y, row := range grid {
		for x, n := range row {
			if n < 2 || y >= len(own) || x >= len(own[y]) {
				continue
			}
			i := own[y][x]
			if i < 0 || seen[i] {
				continue
			}
			seen[i] = true
			out = append(out, errors.Conflict{
				Row:    y,
				Col:    x,
				Region: items[i].Region.String(),
				Owner:  items[i].Object.Repr(0),
			})
		}
	}
	return out
}

// Remove deletes the child placed on region.
func (g *GridSpec) Remove(region Region) error {
	items := g.Items()
	i := slices.IndexFunc(items, func(it GridItem) bool { return it.Region == region })
	if i < 0 {
		return errors.New(errors.ErrCodeNotFound, "GridSpec has no object at region %s", region)
	}
	rest := slices.Delete(items, i, i+1)
	if err := checkExtents(rest); err != nil {
		return err
	}
	return g.setItems(rest)
}

// checkExtents rejects items holding a region that covers no cell once its
// open bounds are resolved against the grid extent. An open region on an
// axis no closed region has sized yet stays pending until one does.
func checkExtents(items []GridItem) error {
	nr, nc := nrows(items), ncols(items)
	for _, it := range items {
		t, l, b, r := it.Region.resolve(nr, nc)
		if b < t || r < l || (t == b && nr > 0) || (l == r && nc > 0) {
			return errors.New(errors.ErrCodeInvalidInput, "region %s is empty on a %dx%d grid", it.Region, nr, nc)
		}
	}
	return nil
}

// Cell returns the child covering cell (row, col). Negative indexes count
// from the end.
func (g *GridSpec) Cell(row, col int) (viewable.Component, error) {
	items := g.items()
	own := owners(items, nrows(items), ncols(items))
	row, err := errors.CheckIndex("GridSpec rows", row, len(own))
	if err != nil {
		return nil, err
	}
	col, err = errors.CheckIndex("GridSpec columns", col, ncols(items))
	if err != nil {
		return nil, err
	}
	i := own[row][col]
	if i < 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "no object at grid cell (%d, %d)", row, col)
	}
	return items[i].Object, nil
}

// Get returns the child covering a single cell when both indexes are
// scalar, and otherwise the sub-grid returned by [GridSpec.Slice].
func (g *GridSpec) Get(rows, cols Index) (any, error) {
	if rows.scalar && cols.scalar {
		return g.Cell(rows.start, cols.start)
	}
	return g.Slice(rows, cols)
}

// Slice returns a new grid holding every child that covers a selected cell.
// Regions are shifted so that the sub-grid starts at row and column zero,
// and pixel sizes are scaled by the fraction of rows and columns kept.
func (g *GridSpec) Slice(rows, cols Index) (*GridSpec, error) {
	items := g.items()
	nr, nc := nrows(items), ncols(items)
	own := owners(items, nr, nc)
	r0, r1, err := rows.cells(nr)
	if err != nil {
		return nil, err
	}
	c0, c1, err := cols.cells(nc)
	if err != nil {
		return nil, err
	}

	var picked []GridItem
	seen := make(map[int]bool)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			if i := own[y][x]; i >= 0 && !seen[i] {
				seen[i] = true
				picked = append(picked, items[i])
			}
		}
	}

	yoff, xoff := offsets(picked)
	var adjusted []GridItem
	for _, it := range picked {
		r := it.Region
		r.RowStart, r.RowEnd = shift(r.RowStart, yoff), shift(r.RowEnd, yoff)
		r.ColStart, r.ColEnd = shift(r.ColStart, xoff), shift(r.ColEnd, xoff)
		item := GridItem{Region: r, Object: it.Object}
		if !slices.Contains(adjusted, item) {
			adjusted = append(adjusted, item)
		}
	}

	sub := NewGridSpec()
	values := make(map[string]any)
	for _, v := range g.Params().Values() {
		if v.Name == "objects" || v.Name == "name" {
			continue
		}
		values[v.Name] = v.Value
	}
	if !g.HasAutoName() {
		sub.SetName(g.Name())
	}
	values["objects"] = append([]GridItem{}, adjusted...)

	widthScale := float64(ncols(adjusted)) / float64(max(nc, 1))
	heightScale := float64(nrows(adjusted)) / float64(max(nr, 1))
	for name, scale := range map[string]float64{
		"width": widthScale, "max_width": widthScale,
		"height": heightScale, "max_height": heightScale,
	} {
		if n, ok := values[name].(int); ok && n != 0 {
			values[name] = int(float64(n) * scale)
		}
	}
	if err := sub.Params().Update(values); err != nil {
		return nil, err
	}
	return sub, nil
}

// offsets returns the smallest row and column start of items, or zero on an
// axis where any start is open.
func offsets(items []GridItem) (yoff, xoff int) {
	if len(items) == 0 {
		return 0, 0
	}
	yoff, xoff = -1, -1
	for _, it := range items {
		if it.Region.RowStart == Open {
			yoff = 0
		} else if yoff != 0 {
			yoff = minStart(yoff, it.Region.RowStart)
		}
		if it.Region.ColStart == Open {
			xoff = 0
		} else if xoff != 0 {
			xoff = minStart(xoff, it.Region.ColStart)
		}
	}
	return max(yoff, 0), max(xoff, 0)
}

func minStart(cur, v int) int {
	if cur < 0 {
		return v
	}
	return min(cur, v)
}

func shift(b, off int) int {
	if b == Open {
		return Open
	}
	return b - off
}

// responsive reports whether the grid uses a sizing mode other than fixed.
func (g *GridSpec) responsive() bool {
	mode := param.Get[string](g.Params(), "sizing_mode")
	return mode != "" && mode != viewable.SizingFixed
}

// initProperties defaults min_width and min_height to the grid's size when
// the grid is responsive.
func (g *GridSpec) initProperties() scene.Props {
	props := g.InitProperties()
	if !g.responsive() {
		return props
	}
	for minName, name := range map[string]string{"min_width": "width", "min_height": "height"} {
		if _, ok := props[minName]; ok {
			continue
		}
		if v, ok := props[name]; ok {
			props[minName] = v
		}
	}
	return props
}

// reconcileGrid sizes every child for its region and returns the grid child
// descriptors.
func (g *GridSpec) reconcileGrid(e viewable.Entry, old any) (any, error) {
	prevItems, _ := old.([]GridItem)
	items := g.items()
	nr, nc := nrows(items), ncols(items)
	cellWidth := param.Get[int](g.Params(), "width") / max(nc, 1)
	cellHeight := param.Get[int](g.Params(), "height") / max(nr, 1)
	responsive := g.responsive()

	start := time.Now()
	var stats observability.ReconcileStats
	children := make([]scene.GridChild, 0, len(items))
	for i, it := range items {
		c := pane.Wrap(it.Object, "")
		items[i].Object = c
		t, l, b, r := it.Region.resolve(nr, nc)
		h, w := max(b-t, 0), max(r-l, 0)

		sizing := scene.Props{"width": w * cellWidth, "height": h * cellHeight}
		if responsive {
			sizing = scene.Props{"sizing_mode": param.Get[string](g.Params(), "sizing_mode")}
		}
		if err := applySizing(c, sizing); err != nil {
			return nil, err
		}
		node, err := g.childNode(e, c, &stats)
		if err != nil {
			return nil, err
		}
		if err := sizeNode(node, sizing, responsive); err != nil {
			return nil, err
		}
		children = append(children, scene.GridChild{Node: node, Row: t, Col: l, RowSpan: h, ColSpan: w})
	}

	prev := make([]viewable.Component, len(prevItems))
	for i, it := range prevItems {
		prev[i] = it.Object
	}
	stats.Disposed = disposeDropped(e.Root, prev, g.Objects())
	g.logReconcile(e, stats, time.Since(start))
	return children, nil
}

// UpdateModel implements [viewable.ModelUpdater]. A change of the grid's own
// size or sizing mode resizes every child.
func (g *GridSpec) UpdateModel(events []param.Event, msg scene.Props, e viewable.Entry) error {
	resized := false
	for _, ev := range events {
		switch ev.Name {
		case "objects":
			return g.Panel.UpdateModel(events, msg, e)
		case "width", "height", "sizing_mode":
			resized = true
		}
	}
	if resized {
		children, err := g.reconcile(e, g.items())
		if err != nil {
			return err
		}
		if name, ok := g.Rename("objects"); ok {
			msg[name] = children
		}
	}
	return g.Panel.UpdateModel(events, msg, e)
}

// applySizing writes sizing into c's properties, skipping any that c does
// not declare or declares read-only.
func applySizing(c viewable.Component, sizing scene.Props) error {
	values := make(map[string]any, len(sizing))
	for name, v := range sizing {
		if d, ok := c.Params().Decl(name); ok && !d.ReadOnly {
			values[name] = v
		}
	}
	return c.Params().Update(values)
}

// sizeNode applies the node-level sizing rules: text-like nodes fill their
// cell in responsive mode, and a box with a single child passes the sizing
// on to that child.
func sizeNode(node scene.Node, sizing scene.Props, responsive bool) error {
	if responsive && scene.IsTextLike(node) {
		style := map[string]any{}
		if cur, ok := node.Get("style").(map[string]any); ok {
			style = maps.Clone(cur)
		}
		changed := false
		for _, axis := range []string{"width", "height"} {
			if _, ok := style[axis]; !ok {
				style[axis] = "100%"
				changed = true
			}
		}
		if changed {
			if err := node.Update(scene.Props{"style": style}); err != nil {
				return err
			}
		}
	}
	if scene.IsBox(node) {
		if kids := scene.Children(node); len(kids) == 1 {
			return kids[0].Update(sizing.Clone())
		}
	}
	return nil
}

// Repr implements [viewable.Component]. Children are labelled with their
// region.
func (g *GridSpec) Repr(depth int) string {
	items := g.items()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = "[" + it.Region.String() + "]"
	}
	return g.repr(depth, labels)
}
