package cli

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

func TestEditRegistryResolve(t *testing.T) {
	r := newEditRegistry()

	tests := []struct {
		name     string
		wantOp   string
		wantArgs []string
	}{
		{"split", "split", nil},
		{"SPLIT", "split", nil},
		{"sp", "split", nil},
		{"half", "scale", []string{"50%"}},
		{"wider", "scale", []string{"200%:100%"}},
		{"app", "add", nil},
		{"appe", "add", nil},
		{"merge", "join", nil},
		{"mi", "mirror", nil},
		{"fl", "flip", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, args, err := r.resolve(tt.name)
			if err != nil {
				t.Fatalf("resolve(%q): %v", tt.name, err)
			}
			if op.name != tt.wantOp {
				t.Errorf("op = %s, want %s", op.name, tt.wantOp)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestEditRegistryResolveErrors(t *testing.T) {
	r := newEditRegistry()

	_, _, err := r.resolve("s")
	if !errors.Is(err, errors.ErrCodeInvalidInput) || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("resolve(s) = %v, want ambiguous", err)
	}
	_, _, err = r.resolve("explode")
	if !errors.Is(err, errors.ErrCodeInvalidInput) || !strings.Contains(err.Error(), "unknown") {
		t.Errorf("resolve(explode) = %v, want unknown", err)
	}
}

func TestEditRegistryApply(t *testing.T) {
	r := newEditRegistry()

	tests := []struct {
		name  string
		input string
		line  []string
		want  string
	}{
		{"mirror", "12\n34", []string{"mirror"}, "21\n43\n"},
		{"flip", "12\n34", []string{"flip"}, "34\n12\n"},
		{"split", "11\n11", []string{"split", "1", "bottom", "1"}, "11\n00\n"},
		{"swap", "12\n34", []string{"swap", "1", "4"}, "42\n31\n"},
		{"double", "12", []string{"double"}, "1122\n1122\n"},
		{"add", "12", []string{"add", "right", "1", "z"}, "12z\n"},
		{"empty line", "12", nil, "12\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := windowgram.MustParse(tt.input)
			got, err := r.apply(w, tt.line, editEnv{})
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestEditRegistryApplyUsage(t *testing.T) {
	r := newEditRegistry()
	w := windowgram.MustParse("12")

	for _, line := range [][]string{
		{"split", "1"},
		{"mirror", "extra"},
		{"double", "2x", "2x"},
		{"rename", "1"},
	} {
		_, err := r.apply(w, line, editEnv{})
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("apply(%v) = %v, want INVALID_INPUT", line, err)
		}
	}
}

func TestEditScaleWarnsOnLoss(t *testing.T) {
	r := newEditRegistry()
	w := windowgram.MustParse("123")

	var warnings []string
	env := editEnv{warn: func(format string, args ...any) {
		warnings = append(warnings, format)
	}}
	got, err := r.apply(w, []string{"scale", "2", "1"}, env)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.String() != "13\n" {
		t.Errorf("got %q", got.String())
	}
	if len(warnings) != 1 {
		t.Errorf("expected one warning, got %v", warnings)
	}
}

func TestEditRegistryHelp(t *testing.T) {
	help := newEditRegistry().help()
	for _, want := range []string{"scale SIZE [SIZE]", "aliases: app, append", "join PANES[.NAME]..."} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestSplitCommands(t *testing.T) {
	tests := []struct {
		args []string
		want [][]string
	}{
		{[]string{"mirror"}, [][]string{{"mirror"}}},
		{[]string{"split", "1", "b", ";", "flip"}, [][]string{{"split", "1", "b"}, {"flip"}}},
		{[]string{"mirror;", "flip"}, [][]string{{"mirror"}, {"flip"}}},
		{[]string{"mirror;flip"}, [][]string{{"mirror"}, {"flip"}}},
		{[]string{";", "mirror", ";", ";"}, [][]string{{"mirror"}}},
		{[]string{";"}, nil},
	}
	for _, tt := range tests {
		got := splitCommands(tt.args)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitCommands(%q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestEditRegistryComplete(t *testing.T) {
	r := newEditRegistry()

	tests := []struct {
		args       []string
		toComplete string
		want       []string
	}{
		{nil, "sp", []string{"split"}},
		{nil, "ha", []string{"half"}},
		{[]string{"mirror", ";"}, "fl", []string{"flip"}},
		{[]string{"mirror;"}, "fl", []string{"flip"}},
		{[]string{"add"}, "b", []string{"bottom"}},
		{[]string{"split", "1"}, "", []string{"top", "bottom", "left", "right"}},
		{[]string{"split"}, "", nil},
		{[]string{"mirror"}, "", nil},
		{[]string{"nope"}, "", nil},
	}
	for _, tt := range tests {
		got := r.complete(tt.args, tt.toComplete)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("complete(%q, %q) = %q, want %q", tt.args, tt.toComplete, got, tt.want)
		}
	}
}
