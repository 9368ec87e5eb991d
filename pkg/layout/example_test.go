package layout_test

import (
	"fmt"

	"github.com/matzehuels/panels/pkg/errors"
	"github.com/matzehuels/panels/pkg/layout"
	"github.com/matzehuels/panels/pkg/scene"
	"github.com/matzehuels/panels/pkg/viewable"
)

func ExampleRow() {
	// Non-component content is wrapped into panes
	row := layout.NewRow("# Title", 42)
	_ = row.Params().Set("width", 300)

	fmt.Println(row)
	// Output:
	// Row(width=300)
	//     [0] Markdown(str)
	//     [1] Str(int)
}

func ExampleRow_reconcile() {
	// Mutations reuse the nodes of children that stay in the layout
	row := layout.NewRow("a", "b")
	doc := scene.NewDocument(scene.NewMemory(), nil)
	root, _ := viewable.Render(doc, row)
	before := scene.Children(root)

	_ = row.Insert(1, "c")
	after := scene.Children(root)
	fmt.Println("Children:", len(after))
	fmt.Println("First reused:", after[0] == before[0])
	fmt.Println("Last reused:", after[2] == before[1])
	// Output:
	// Children: 3
	// First reused: true
	// Last reused: true
}

func ExampleTabs() {
	// Labels follow the children through every mutation
	tabs := layout.NewTabs(layout.Tab{Label: "Intro", Content: "Hello"})
	_ = tabs.Append(layout.Tab{Label: "Data", Content: 1})
	_ = tabs.Reverse()
	fmt.Println(tabs.Names())

	_, _ = tabs.Pop(0)
	fmt.Println(tabs.Names())
	// Output:
	// [Data Intro]
	// [Intro]
}

func ExampleGridSpec() {
	// Place a sidebar and a header, then try to place over the sidebar
	g := layout.NewGridSpec()
	_ = g.Set(layout.Span(0, 2), layout.At(0), "sidebar")
	_ = g.Set(layout.At(0), layout.Span(1, 3), "header")
	fmt.Printf("%dx%d\n", g.NRows(), g.NCols())
	fmt.Println(layout.FormatGrid(g.Grid()))

	err := g.Set(layout.At(1), layout.Span(0, 2), "footer")
	fmt.Println("Overlap:", errors.Is(err, errors.ErrCodeOverlap))
	// Output:
	// 2x3
	// [[1 1 1]
	//  [1 0 0]]
	// Overlap: true
}

func ExampleGridSpec_Slice() {
	// A sub-grid is rebased to zero and scaled to the fraction it covers
	g := layout.NewGridSpec()
	_ = g.Set(layout.Span(0, 2), layout.Span(0, 2), "left")
	_ = g.Set(layout.Span(0, 2), layout.Span(2, 4), "right")

	sub, _ := g.Slice(layout.All(), layout.From(2))
	fmt.Println(sub.Regions())
	fmt.Println("Width:", sub.Params().Get("width"))
	// Output:
	// [(0, 0, 2, 2)]
	// Width: 300
}
