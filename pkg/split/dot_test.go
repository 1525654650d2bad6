package split

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/windowgram/pkg/windowgram"
)

func TestDOT(t *testing.T) {
	plan, err := Compile(windowgram.MustParse("11\n22"), Options{Canvas: Canvas{W: 80, H: 24}})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	dot := plan.DOT()

	for _, want := range []string{
		"digraph split {",
		`"r1001" -> "r1002" [label="v 50.0%"];`,
		`"r1001" -> "p1" [style=dotted];`,
		`"r1002" -> "p2" [style=dotted];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT() missing %q\n%s", want, dot)
		}
	}
}

func TestDOT_Unsupported(t *testing.T) {
	plan, err := Compile(windowgram.MustParse("112\n452\n433"), Options{})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if dot := plan.DOT(); !strings.Contains(dot, "dashed") {
		t.Errorf("DOT() does not mark unsupported regions\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	plan, err := Compile(windowgram.MustParse("12\n34"), Options{})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	svg, err := RenderSVG(context.Background(), plan.DOT())
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), `not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
