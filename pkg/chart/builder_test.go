package chart

import (
	"strings"
	"testing"
)

func TestBuilder_Defaults(t *testing.T) {
	spec, err := NewBuilder("Defaults").
		Line("l", []float64{0, 1}, []float64{0, 1}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v, want nil", err)
	}

	if spec.Width != DefaultWidth {
		t.Errorf("Width = %d, want %d", spec.Width, DefaultWidth)
	}
	if spec.Height != DefaultHeight {
		t.Errorf("Height = %d, want %d", spec.Height, DefaultHeight)
	}
}

func TestBuilder_TraceOrder(t *testing.T) {
	spec, err := NewBuilder("Order").
		Area("sky", []float64{0, 1}, []float64{1, 1}).
		Area("terrain", []float64{0, 1}, []float64{0.5, 0.5}).
		Segment("plant", 0.5, 0.5, 0.5, 0.8).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v, want nil", err)
	}

	want := []string{"sky", "terrain", "plant"}
	if len(spec.Traces) != len(want) {
		t.Fatalf("len(Traces) = %d, want %d", len(spec.Traces), len(want))
	}
	for i, name := range want {
		if spec.Traces[i].Name != name {
			t.Errorf("Traces[%d].Name = %q, want %q", i, spec.Traces[i].Name, name)
		}
	}
}

func TestBuilder_StyledAndLabeled(t *testing.T) {
	spec, err := NewBuilder("Styled").
		Bar("counts", []float64{0, 1}, []float64{4, 7}).
		Styled(Style{Color: "#2e8b57", Width: 2}).
		Labeled("Eyes", "Wings").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v, want nil", err)
	}

	tr := spec.Traces[0]
	if tr.Style.Color != "#2e8b57" {
		t.Errorf("Style.Color = %q, want #2e8b57", tr.Style.Color)
	}
	if len(tr.Labels) != 2 || tr.Labels[1] != "Wings" {
		t.Errorf("Labels = %v, want [Eyes Wings]", tr.Labels)
	}
}

func TestBuilder_StyledBeforeTrace(t *testing.T) {
	_, err := NewBuilder("Misuse").
		Styled(Style{Color: "#fff"}).
		Line("l", []float64{0}, []float64{0}).
		Build()
	if err == nil {
		t.Fatal("Build() should report Styled before any trace")
	}
	if !strings.Contains(err.Error(), "Styled called before any trace") {
		t.Errorf("Build() error = %v, want builder misuse report", err)
	}
}

func TestBuilder_InvalidSpec(t *testing.T) {
	_, err := NewBuilder("Broken").
		Line("l", []float64{1, 2, 3}, []float64{1}).
		Build()
	if err == nil {
		t.Fatal("Build() should return validation error")
	}
	if SpecErrors(err) == nil {
		t.Errorf("Build() error should be *AggregateError, got %T", err)
	}
}

func TestBuilder_Layout(t *testing.T) {
	spec, err := NewBuilder("Layout").
		Subtitle("A subtitle").
		Axes("x", "y").
		Canvas(640, 320).
		Background("#0a0a1a").
		Scatter3D("atoms", []float64{0}, []float64{0}, []float64{0}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v, want nil", err)
	}

	if spec.Subtitle != "A subtitle" || spec.XLabel != "x" || spec.YLabel != "y" {
		t.Errorf("layout fields not carried: %+v", spec)
	}
	if spec.Width != 640 || spec.Height != 320 {
		t.Errorf("Canvas = %dx%d, want 640x320", spec.Width, spec.Height)
	}
	if spec.Background != "#0a0a1a" {
		t.Errorf("Background = %q, want #0a0a1a", spec.Background)
	}
}
