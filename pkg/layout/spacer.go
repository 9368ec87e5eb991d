package layout

import (
	"github.com/matzehuels/panels/pkg/param"
	"github.com/matzehuels/panels/pkg/scene"
	"github.com/matzehuels/panels/pkg/viewable"
)

// Spacer is an empty leaf used to add positive or negative space.
type Spacer struct {
	viewable.Base
}

// NewSpacer creates a spacer. Size it through its width and height
// properties.
func NewSpacer() *Spacer {
	s := &Spacer{}
	s.Init(s, "Spacer", nil, nil)
	return s
}

func newStretchSpacer(typeName, mode string) *Spacer {
	s := &Spacer{}
	s.Init(s, typeName, nil, nil,
		param.Decl{Name: "sizing_mode", Default: mode, ReadOnly: true},
	)
	return s
}

// NewVSpacer creates a spacer that fills all available vertical space.
func NewVSpacer() *Spacer { return newStretchSpacer("VSpacer", viewable.SizingStretchHeight) }

// NewHSpacer creates a spacer that fills all available horizontal space.
func NewHSpacer() *Spacer { return newStretchSpacer("HSpacer", viewable.SizingStretchWidth) }

// Materialize implements [viewable.Component].
func (s *Spacer) Materialize(doc *scene.Document, root, parent scene.Node) (scene.Node, error) {
	return s.MaterializeLeaf(doc, root, parent, scene.KindSpacer, nil)
}
