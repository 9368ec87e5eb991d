package scene

import (
	"errors"
	"strings"
	"testing"
)

func TestMemoryCreate(t *testing.T) {
	m := NewMemory()
	n, err := m.Create(KindRow, Props{"width": 300})
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindRow {
		t.Errorf("Kind() = %v, want Row", n.Kind())
	}
	if n.Get("width") != 300 {
		t.Errorf("width = %v, want 300", n.Get("width"))
	}
	if len(n.ID()) != 36 {
		t.Errorf("ID() = %q, want a UUID", n.ID())
	}
	if _, err := m.Create(Kind("Canvas"), nil); err == nil {
		t.Error("Create with unknown kind should fail")
	}
	if m.Len() != 1 || m.Created() != 1 {
		t.Errorf("Len/Created = %d/%d, want 1/1", m.Len(), m.Created())
	}
}

func TestMemNodeUpdateRecorded(t *testing.T) {
	m := NewMemory()
	n, _ := m.Create(KindColumn, nil)
	mn := n.(*MemNode)

	if err := n.Update(Props{"height": 10, "name": "col"}); err != nil {
		t.Fatal(err)
	}
	ups := mn.Updates()
	if len(ups) != 1 || ups[0]["height"] != 10 || ups[0]["name"] != "col" {
		t.Errorf("Updates() = %v", ups)
	}

	boom := errors.New("boom")
	m.FailUpdates(boom)
	if err := n.Update(Props{"height": 11}); !errors.Is(err, boom) {
		t.Errorf("Update() error = %v, want boom", err)
	}
	if n.Get("height") != 10 {
		t.Error("failed update should not apply")
	}
}

func TestMemNodeDisposeIdempotent(t *testing.T) {
	m := NewMemory()
	n, _ := m.Create(KindSpacer, nil)
	mn := n.(*MemNode)

	n.Dispose()
	n.Dispose()
	if mn.Disposed() != 1 {
		t.Errorf("Disposed() = %d, want 1", mn.Disposed())
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestMemNodeEmit(t *testing.T) {
	m := NewMemory()
	n, _ := m.Create(KindTabs, Props{"active": 0})
	mn := n.(*MemNode)

	var got []any
	unsub := n.OnChange("active", func(old, new any) { got = append(got, old, new) })
	mn.Emit("active", 2)
	unsub()
	mn.Emit("active", 3)

	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("listener saw %v, want [0 2]", got)
	}
	if len(mn.Updates()) != 0 {
		t.Error("Emit should not record updates")
	}
}

func TestChildren(t *testing.T) {
	m := NewMemory()
	a, _ := m.Create(KindMarkup, nil)
	b, _ := m.Create(KindSpacer, nil)

	row, _ := m.Create(KindRow, Props{"children": []Node{a, b}})
	panel, _ := m.Create(KindTabPanel, Props{"child": a, "title": "A"})
	grid, _ := m.Create(KindGridBox, Props{"children": []GridChild{{Node: b, RowSpan: 1, ColSpan: 2}}})

	tests := []struct {
		name string
		node Node
		want []Node
	}{
		{"row", row, []Node{a, b}},
		{"panel", panel, []Node{a}},
		{"grid", grid, []Node{b}},
		{"leaf", a, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Children(tt.node)
			if len(got) != len(tt.want) {
				t.Fatalf("Children() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Children()[%d] mismatch", i)
				}
			}
		})
	}
}

func TestDocumentRoots(t *testing.T) {
	m := NewMemory()
	d := NewDocument(m, nil)
	if d.Logger == nil {
		t.Fatal("NewDocument should default the logger")
	}
	r, _ := m.Create(KindRow, nil)
	d.AddRoot(r)
	d.AddRoot(r)
	if len(d.Roots()) != 1 || !d.HasRoot(r.ID()) {
		t.Errorf("Roots() = %v", d.Roots())
	}
	d.RemoveRoot(r)
	if d.HasRoot(r.ID()) {
		t.Error("root still attached after RemoveRoot")
	}
}

func TestToDOT(t *testing.T) {
	m := NewMemory()
	a, _ := m.Create(KindMarkup, Props{"text": "hello"})
	grid, _ := m.Create(KindGridBox, Props{"children": []GridChild{{Node: a, Row: 1, Col: 0, RowSpan: 1, ColSpan: 2}}})

	dot := ToDOT(grid)
	for _, want := range []string{"digraph scene", "GridBox", "text: hello", `label="1,0 1x2"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}
