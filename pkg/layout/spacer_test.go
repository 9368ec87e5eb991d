package layout

import (
	"testing"

	"github.com/matzehuels/panels/pkg/errors"
	"github.com/matzehuels/panels/pkg/scene"
	"github.com/matzehuels/panels/pkg/viewable"
)

func TestSpacers(t *testing.T) {
	tests := []struct {
		name     string
		spacer   *Spacer
		typeName string
		mode     any
	}{
		{"plain", NewSpacer(), "Spacer", nil},
		{"vertical", NewVSpacer(), "VSpacer", viewable.SizingStretchHeight},
		{"horizontal", NewHSpacer(), "HSpacer", viewable.SizingStretchWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.spacer.TypeName() != tt.typeName {
				t.Errorf("TypeName() = %q, want %q", tt.spacer.TypeName(), tt.typeName)
			}
			_, _, root := render(t, tt.spacer)
			if root.Kind() != scene.KindSpacer {
				t.Errorf("Kind() = %v, want Spacer", root.Kind())
			}
			if root.Get("sizing_mode") != tt.mode {
				t.Errorf("sizing_mode = %v, want %v", root.Get("sizing_mode"), tt.mode)
			}
		})
	}
}

func TestStretchSpacerReadOnly(t *testing.T) {
	s := NewVSpacer()
	err := s.Params().Set("sizing_mode", viewable.SizingFixed)
	if !errors.Is(err, errors.ErrCodeReadOnly) {
		t.Fatalf("err = %v, want %s", err, errors.ErrCodeReadOnly)
	}
	if err := s.Params().Set("width", 20); err != nil {
		t.Errorf("width should stay writable: %v", err)
	}
}
