package layout

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/panels/pkg/errors"
	"github.com/matzehuels/panels/pkg/pane"
	"github.com/matzehuels/panels/pkg/scene"
	"github.com/matzehuels/panels/pkg/viewable"
)

func mustSet(t *testing.T, g *GridSpec, rows, cols Index, content any) {
	t.Helper()
	if err := g.Set(rows, cols, content); err != nil {
		t.Fatalf("Set(%s, %s): %v", rows, cols, err)
	}
}

func TestGridSpecOverlap(t *testing.T) {
	g := NewGridSpec()
	a := pane.NewMarkdown("A")
	mustSet(t, g, Span(0, 2), At(0), a)
	mustSet(t, g, At(0), At(1), "B")

	err := g.Set(At(0), At(0), "C")
	var overlap *errors.OverlapError
	if !stderrors.As(err, &overlap) {
		t.Fatalf("err = %v, want *OverlapError", err)
	}
	if !errors.Is(err, errors.ErrCodeOverlap) {
		t.Error("overlap should carry the OVERLAP code")
	}
	if len(overlap.Conflicts) != 1 {
		t.Fatalf("conflicts = %+v, want 1", overlap.Conflicts)
	}
	c := overlap.Conflicts[0]
	if c.Region != "(0, 0, 2, 1)" || c.Row != 0 || c.Col != 0 {
		t.Errorf("conflict = %+v", c)
	}
	if overlap.Map != "[[2 1]\n [1 0]]" {
		t.Errorf("map =\n%s", overlap.Map)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d after a rejected placement, want 2", g.Len())
	}
}

func TestGridSpecSelfOverlap(t *testing.T) {
	g := NewGridSpec()
	a := pane.NewMarkdown("A")
	mustSet(t, g, Span(0, 2), At(0), a)
	mustSet(t, g, At(0), At(1), "B")

	err := g.Set(Span(0, 2), At(0), "D")
	var overlap *errors.OverlapError
	if !stderrors.As(err, &overlap) {
		t.Fatalf("err = %v, want *OverlapError", err)
	}
	if overlap.Map != "[[2 1]\n [2 0]]" {
		t.Errorf("map =\n%s", overlap.Map)
	}
	if got, _ := g.Cell(0, 0); got != a {
		t.Error("self overlap must leave the grid unchanged")
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestGridSpecExtent(t *testing.T) {
	tests := []struct {
		name   string
		place  func(g *GridSpec)
		rows   int
		cols   int
		layout string
	}{
		{"empty", func(*GridSpec) {}, 0, 0, "[]"},
		{"single", func(g *GridSpec) { _ = g.Set(At(1), At(2), "A") }, 2, 3, "[[0 0 0]\n [0 0 1]]"},
		{"open row", func(g *GridSpec) {
			_ = g.Set(At(0), All(), "header")
			_ = g.Set(Span(1, 3), Span(0, 2), "body")
		}, 3, 2, "[[1 1]\n [1 1]\n [1 1]]"},
		{"open start", func(g *GridSpec) {
			_ = g.Set(To(2), At(0), "side")
			_ = g.Set(From(0), Span(1, 3), "main")
		}, 2, 3, "[[1 1 1]\n [1 1 1]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGridSpec()
			tt.place(g)
			if g.NRows() != tt.rows || g.NCols() != tt.cols {
				t.Errorf("extent = %dx%d, want %dx%d", g.NRows(), g.NCols(), tt.rows, tt.cols)
			}
			if got := FormatGrid(g.Grid()); got != tt.layout {
				t.Errorf("Grid() =\n%s\nwant\n%s", got, tt.layout)
			}
		})
	}
}

func TestGridSpecInvalidRegion(t *testing.T) {
	tests := []struct {
		name string
		rows Index
		cols Index
		code errors.Code
	}{
		{"negative", At(-2), At(0), errors.ErrCodeOutOfBounds},
		{"empty span", Span(2, 2), At(0), errors.ErrCodeInvalidInput},
		{"reversed span", At(0), Span(3, 1), errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGridSpec()
			if err := g.Set(tt.rows, tt.cols, "A"); !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestGridSpecEmptyResolvedRegion(t *testing.T) {
	tests := []struct {
		name  string
		place func(g *GridSpec)
		rows  Index
		cols  Index
	}{
		{"open start past extent", func(g *GridSpec) { _ = g.Set(Span(0, 3), At(0), "a") }, From(5), At(1)},
		{"open start at extent", func(g *GridSpec) { _ = g.Set(Span(0, 3), At(0), "a") }, From(3), At(1)},
		{"open column past extent", func(g *GridSpec) { _ = g.Set(At(0), Span(0, 2), "a") }, At(1), From(4)},
		{"open start on empty grid", func(*GridSpec) {}, From(2), At(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGridSpec()
			tt.place(g)
			n := g.Len()
			if err := g.Set(tt.rows, tt.cols, "b"); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("err = %v, want INVALID_INPUT", err)
			}
			if g.Len() != n {
				t.Errorf("Len() = %d, want %d", g.Len(), n)
			}
			if n > 0 {
				render(t, g)
			}
		})
	}
}

func TestGridSpecOpenRegionPending(t *testing.T) {
	g := NewGridSpec()
	mustSet(t, g, At(0), All(), "header")
	mustSet(t, g, Span(1, 3), Span(0, 2), "body")
	mustSet(t, g, From(1), At(2), "side")

	if g.Len() != 3 || g.NCols() != 3 {
		t.Fatalf("len = %d, cols = %d", g.Len(), g.NCols())
	}
	// Removing body would leave side starting past the last row.
	if err := g.Remove(Region{1, 0, 3, 2}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Remove err = %v, want INVALID_INPUT", err)
	}
	if g.Len() != 3 {
		t.Errorf("Len() = %d after rejected Remove", g.Len())
	}
}

func TestGridSpecCell(t *testing.T) {
	g := NewGridSpec()
	a := pane.NewMarkdown("A")
	mustSet(t, g, Span(0, 2), At(0), a)
	mustSet(t, g, At(0), At(1), "B")

	tests := []struct {
		name     string
		row, col int
		want     viewable.Component
		code     errors.Code
	}{
		{"covered", 1, 0, a, ""},
		{"negative", -1, -2, a, ""},
		{"empty", 1, 1, nil, errors.ErrCodeNotFound},
		{"row out of range", 2, 0, nil, errors.ErrCodeOutOfBounds},
		{"col out of range", 0, 5, nil, errors.ErrCodeOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Cell(tt.row, tt.col)
			if tt.code != "" {
				if !errors.Is(err, tt.code) {
					t.Errorf("err = %v, want %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Cell() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGridSpecSlice(t *testing.T) {
	g := NewGridSpec()
	_ = g.Params().Set("max_width", 1000)
	a, b, c := pane.NewMarkdown("A"), pane.NewMarkdown("B"), pane.NewMarkdown("C")
	mustSet(t, g, Span(0, 2), Span(0, 2), a)
	mustSet(t, g, Span(0, 2), Span(2, 4), b)
	mustSet(t, g, Span(2, 4), Span(0, 4), c)

	sub, err := g.Slice(Span(0, 2), Span(2, 4))
	if err != nil {
		t.Fatal(err)
	}
	if sub == g {
		t.Fatal("Slice must return a new grid")
	}
	if sub.NRows() != 2 || sub.NCols() != 2 {
		t.Errorf("sub extent = %dx%d, want 2x2", sub.NRows(), sub.NCols())
	}
	items := sub.Items()
	if len(items) != 1 || items[0].Object != b {
		t.Fatalf("sub items = %+v, want only B", items)
	}
	if want := (Region{0, 0, 2, 2}); items[0].Region != want {
		t.Errorf("region = %s, want %s", items[0].Region, want)
	}
	width := viewableInt(sub, "width")
	height := viewableInt(sub, "height")
	if width != 300 || height != 300 {
		t.Errorf("size = %dx%d, want 300x300", width, height)
	}
	if got := viewableInt(sub, "max_width"); got != 500 {
		t.Errorf("max_width = %d, want 500", got)
	}

	bottom, err := g.Slice(From(1), All())
	if err != nil {
		t.Fatal(err)
	}
	if bottom.Len() != 3 {
		t.Errorf("bottom holds %d objects, want 3", bottom.Len())
	}
	if bottom.Regions()[0] != (Region{0, 0, 2, 2}) {
		t.Errorf("first region = %s, want rows and cols already at zero", bottom.Regions()[0])
	}
	if g.Len() != 3 {
		t.Error("Slice must not change the source grid")
	}
}

func TestGridSpecSliceOpenStart(t *testing.T) {
	g := NewGridSpec()
	mustSet(t, g, All(), At(0), "side")
	mustSet(t, g, Span(1, 2), Span(1, 3), "main")

	sub, err := g.Slice(At(1), Span(1, 3))
	if err != nil {
		t.Fatal(err)
	}
	if got := sub.Regions(); len(got) != 1 || got[0] != (Region{0, 0, 1, 2}) {
		t.Errorf("regions = %v, want [(0, 0, 1, 2)]", got)
	}

	whole, err := g.Slice(At(1), All())
	if err != nil {
		t.Fatal(err)
	}
	if got := whole.Regions(); len(got) != 2 || got[1] != (Region{1, 1, 2, 3}) {
		t.Errorf("regions = %v: an open start must disable rebasing", got)
	}
}

func viewableInt(c viewable.Component, name string) int {
	n, _ := c.Params().Get(name).(int)
	return n
}

func TestGridSpecGet(t *testing.T) {
	g := NewGridSpec()
	a := pane.NewMarkdown("A")
	mustSet(t, g, At(0), At(0), a)
	mustSet(t, g, At(0), At(1), "B")

	v, err := g.Get(At(0), At(0))
	if err != nil {
		t.Fatal(err)
	}
	if v != a {
		t.Errorf("Get(0, 0) = %v, want A", v)
	}
	v, err = g.Get(At(0), All())
	if err != nil {
		t.Fatal(err)
	}
	if sub, ok := v.(*GridSpec); !ok || sub.Len() != 2 {
		t.Errorf("Get(0, :) = %v, want a grid with 2 objects", v)
	}
}

func TestGridSpecMaterializeFixed(t *testing.T) {
	g := NewGridSpec()
	a := pane.NewMarkdown("A")
	col := NewColumn("inner")
	mustSet(t, g, Span(0, 2), At(0), a)
	mustSet(t, g, At(0), At(1), col)
	mustSet(t, g, At(1), At(1), NewVSpacer())
	_, _, root := render(t, g)

	if root.Kind() != scene.KindGridBox {
		t.Fatalf("Kind() = %v, want GridBox", root.Kind())
	}
	children, _ := root.Get("children").([]scene.GridChild)
	if len(children) != 3 {
		t.Fatalf("children = %d, want 3", len(children))
	}
	first := children[0]
	if first.Row != 0 || first.Col != 0 || first.RowSpan != 2 || first.ColSpan != 1 {
		t.Errorf("first child = %+v", first)
	}
	nodeA := modelOf(t, a, root)
	if first.Node != nodeA {
		t.Error("descriptor should carry the child's node")
	}
	if nodeA.Get("width") != 300 || nodeA.Get("height") != 600 {
		t.Errorf("A size = %vx%v, want 300x600", nodeA.Get("width"), nodeA.Get("height"))
	}

	inner := scene.Children(modelOf(t, col, root))[0].(*scene.MemNode)
	if inner.Get("width") != 300 || inner.Get("height") != 300 {
		t.Errorf("single child of a box should be sized: %vx%v", inner.Get("width"), inner.Get("height"))
	}

	_ = g.Params().Set("width", 1200)
	if nodeA.Get("width") != 600 {
		t.Errorf("A width = %v after resize, want 600", nodeA.Get("width"))
	}
}

func TestGridSpecMaterializeResponsive(t *testing.T) {
	g := NewGridSpec()
	_ = g.Params().Set("sizing_mode", viewable.SizingStretchBoth)
	a := pane.NewMarkdown("A")
	mustSet(t, g, At(0), At(0), a)
	_, _, root := render(t, g)

	if root.Get("min_width") != DefaultGridWidth || root.Get("min_height") != DefaultGridHeight {
		t.Errorf("min size = %vx%v", root.Get("min_width"), root.Get("min_height"))
	}
	nodeA := modelOf(t, a, root)
	if nodeA.Get("sizing_mode") != viewable.SizingStretchBoth {
		t.Errorf("child sizing_mode = %v", nodeA.Get("sizing_mode"))
	}
	style, _ := nodeA.Get("style").(map[string]any)
	if style["width"] != "100%" || style["height"] != "100%" {
		t.Errorf("style = %v, want full width and height", style)
	}
}

func TestGridSpecRemove(t *testing.T) {
	g := NewGridSpec()
	a := pane.NewMarkdown("A")
	mustSet(t, g, At(0), At(0), a)
	mustSet(t, g, At(0), At(1), "B")
	_, _, root := render(t, g)
	nodeA := modelOf(t, a, root)

	if err := g.Remove(Region{0, 0, 1, 1}); err != nil {
		t.Fatal(err)
	}
	if nodeA.Disposed() != 1 {
		t.Error("removed child should be disposed")
	}
	if children, _ := root.Get("children").([]scene.GridChild); len(children) != 1 {
		t.Errorf("children = %d, want 1", len(children))
	}
	if err := g.Remove(Region{0, 0, 1, 1}); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("second Remove err = %v", err)
	}
}

func TestGridSpecRepr(t *testing.T) {
	g := NewGridSpec()
	mustSet(t, g, Span(0, 2), At(0), "A")
	mustSet(t, g, From(0), At(1), 5)

	want := "GridSpec\n    [(0, 0, 2, 1)] Markdown(str)\n    [(0, 1, None, 2)] Str(int)"
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestIndexString(t *testing.T) {
	tests := []struct {
		ix   Index
		want string
	}{
		{At(3), "3"},
		{Span(1, 4), "1:4"},
		{From(2), "2:"},
		{To(2), ":2"},
		{All(), ":"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ix.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatGrid(t *testing.T) {
	tests := []struct {
		name string
		grid [][]int
		want string
	}{
		{"empty", nil, "[]"},
		{"row", [][]int{{0, 1}}, "[[0 1]]"},
		{"wide values", [][]int{{10, 1}, {0, 2}}, "[[10  1]\n [ 0  2]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatGrid(tt.grid); got != tt.want {
				t.Errorf("FormatGrid() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
