package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/flex"
	"github.com/matzehuels/windowgram/pkg/scale"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// editEnv carries settings shared by every operation of one edit run.
type editEnv struct {
	strategy scale.Strategy
	warn     func(format string, args ...any)
}

// editOp is one modifier available to `windowgram edit`.
type editOp struct {
	name    string
	usage   string
	summary string
	minArgs int
	maxArgs int // -1 for no limit
	edgeArg int // 1-based position of an EDGE argument, 0 if none
	run     func(w *windowgram.Windowgram, args []string, env editEnv) (*windowgram.Windowgram, error)
}

// editAlias maps an alternate name to an operation, optionally with preset
// arguments placed before the user's.
type editAlias struct {
	name   string
	target string
	args   []string
}

// editRegistry holds the edit operations and their aliases. Lookups accept
// any unambiguous prefix of an operation or alias name.
type editRegistry struct {
	ops     map[string]*editOp
	order   []string
	aliases map[string]editAlias
}

func newEditRegistry() *editRegistry {
	r := &editRegistry{ops: make(map[string]*editOp), aliases: make(map[string]editAlias)}

	r.register(&editOp{
		name: "scale", usage: "scale SIZE [SIZE]", minArgs: 1, maxArgs: 2,
		summary: "resize to characters (25), percent (50%) or multiple (2x); WxH or W:H for both axes",
		run:     editScale,
	}, editAlias{name: "resize"},
		editAlias{name: "half", args: []string{"50%"}},
		editAlias{name: "double", args: []string{"2x"}},
		editAlias{name: "wider", args: []string{"200%:100%"}},
		editAlias{name: "thinner", args: []string{"50%:100%"}},
		editAlias{name: "taller", args: []string{"100%:200%"}},
		editAlias{name: "shorter", args: []string{"100%:50%"}},
		editAlias{name: "higher", args: []string{"100%:200%"}},
		editAlias{name: "lower", args: []string{"100%:50%"}},
	)
	r.register(&editOp{
		name: "add", usage: "add EDGE SIZE [NEWPANE]", minArgs: 2, maxArgs: 3, edgeArg: 1,
		summary: "append a new pane along an edge",
		run:     editAdd,
	}, editAlias{name: "append"}, editAlias{name: "app"})
	r.register(&editOp{
		name: "break", usage: "break PANE COLSxROWS [NEWPANES]", minArgs: 2, maxArgs: 3,
		summary: "break a pane into a grid, scaling up if it does not divide evenly",
		run:     editBreak,
	}, editAlias{name: "grid"}, editAlias{name: "panes"})
	r.register(&editOp{
		name: "join", usage: "join PANES[.NAME]...", minArgs: 1, maxArgs: -1,
		summary: "join each group of panes into one pane",
		run:     editJoin,
	}, editAlias{name: "group"}, editAlias{name: "merge"}, editAlias{name: "glue"})
	r.register(&editOp{
		name: "split", usage: "split PANE EDGE [SIZE] [NEWPANES]", minArgs: 2, maxArgs: 4, edgeArg: 2,
		summary: "split a pane from an edge, 50% by default",
		run:     editSplit,
	})
	r.register(&editOp{
		name: "rename", usage: "rename FROM TO [FROM TO]...", minArgs: 2, maxArgs: -1,
		summary: "rename panes pairwise",
		run: func(w *windowgram.Windowgram, args []string, _ editEnv) (*windowgram.Windowgram, error) {
			pairs, err := flex.Pairs(args)
			if err != nil {
				return nil, err
			}
			return flex.Rename(w, pairs)
		},
	})
	r.register(&editOp{
		name: "swap", usage: "swap FROM TO [FROM TO]...", minArgs: 2, maxArgs: -1,
		summary: "exchange panes pairwise",
		run: func(w *windowgram.Windowgram, args []string, _ editEnv) (*windowgram.Windowgram, error) {
			pairs, err := flex.Pairs(args)
			if err != nil {
				return nil, err
			}
			return flex.Swap(w, pairs)
		},
	})
	r.register(&editOp{
		name: "mirror", usage: "mirror", summary: "reverse left to right",
		run: func(w *windowgram.Windowgram, _ []string, _ editEnv) (*windowgram.Windowgram, error) {
			return flex.Mirror(w), nil
		},
	})
	r.register(&editOp{
		name: "flip", usage: "flip", summary: "reverse top to bottom",
		run: func(w *windowgram.Windowgram, _ []string, _ editEnv) (*windowgram.Windowgram, error) {
			return flex.Flip(w), nil
		},
	})
	return r
}

func (r *editRegistry) register(op *editOp, aliases ...editAlias) {
	r.ops[op.name] = op
	r.order = append(r.order, op.name)
	for _, a := range aliases {
		a.target = op.name
		r.aliases[a.name] = a
	}
}

// resolve finds the operation for name and returns it with any preset
// arguments of the alias used.
func (r *editRegistry) resolve(name string) (*editOp, []string, error) {
	name = strings.ToLower(name)
	if op, ok := r.ops[name]; ok {
		return op, nil, nil
	}
	if a, ok := r.aliases[name]; ok {
		return r.ops[a.target], a.args, nil
	}

	var hits []string
	for _, n := range r.names() {
		if strings.HasPrefix(n, name) {
			hits = append(hits, n)
		}
	}
	switch len(hits) {
	case 0:
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "unknown operation %q", name)
	case 1:
		return r.resolve(hits[0])
	}
	return nil, nil, errors.New(errors.ErrCodeInvalidInput,
		"ambiguous operation %q has %d matches: %s", name, len(hits), strings.Join(hits, ", "))
}

// names lists operation and alias names in sorted order.
func (r *editRegistry) names() []string {
	names := make([]string, 0, len(r.ops)+len(r.aliases))
	for n := range r.ops {
		names = append(names, n)
	}
	for n := range r.aliases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// apply runs one command line (operation name followed by arguments).
func (r *editRegistry) apply(w *windowgram.Windowgram, line []string, env editEnv) (*windowgram.Windowgram, error) {
	if len(line) == 0 {
		return w, nil
	}
	op, preset, err := r.resolve(line[0])
	if err != nil {
		return nil, err
	}
	args := append(append([]string{}, preset...), line[1:]...)
	if len(args) < op.minArgs || (op.maxArgs >= 0 && len(args) > op.maxArgs) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "usage: %s", op.usage)
	}
	if env.strategy == nil {
		env.strategy = scale.Corner{}
	}
	if env.warn == nil {
		env.warn = func(string, ...any) {}
	}
	return op.run(w, args, env)
}

// help lists the operations with their aliases.
func (r *editRegistry) help() string {
	byTarget := make(map[string][]string)
	for n, a := range r.aliases {
		byTarget[a.target] = append(byTarget[a.target], n)
	}
	var b strings.Builder
	for _, name := range r.order {
		op := r.ops[name]
		fmt.Fprintf(&b, "  %-36s %s\n", op.usage, op.summary)
		if aliases := byTarget[name]; len(aliases) > 0 {
			sort.Strings(aliases)
			fmt.Fprintf(&b, "  %-36s aliases: %s\n", "", strings.Join(aliases, ", "))
		}
	}
	return b.String()
}

// complete suggests operation names at the start of a command line and edge
// names where the current operation expects an edge.
func (r *editRegistry) complete(args []string, toComplete string) []string {
	lines := splitCommands(args)
	if len(lines) == 0 || strings.HasSuffix(args[len(args)-1], ";") {
		return withPrefix(r.names(), toComplete)
	}
	line := lines[len(lines)-1]
	op, preset, err := r.resolve(line[0])
	if err != nil || op.edgeArg == 0 || len(preset)+len(line) != op.edgeArg {
		return nil
	}
	edges := []string{flex.Top.String(), flex.Bottom.String(), flex.Left.String(), flex.Right.String()}
	return withPrefix(edges, toComplete)
}

func withPrefix(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}

// splitCommands splits args on ";" tokens into command lines. A token may
// also end with ";".
func splitCommands(args []string) [][]string {
	var lines [][]string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, cur)
			cur = nil
		}
	}
	for _, a := range args {
		for a != "" {
			part, rest, found := strings.Cut(a, ";")
			if part = strings.TrimSpace(part); part != "" {
				cur = append(cur, part)
			}
			if !found {
				break
			}
			flush()
			a = rest
		}
	}
	flush()
	return lines
}

// =============================================================================
// Operations
// =============================================================================

func editScale(w *windowgram.Windowgram, args []string, env editEnv) (*windowgram.Windowgram, error) {
	width, height, err := parseDims(args, w.Width(), w.Height())
	if err != nil {
		return nil, err
	}
	res, err := flex.Scale(w, width, height, env.strategy, true)
	if err != nil {
		return nil, err
	}
	if res.Lost != "" {
		env.warn("Lost %d panes: %s", len(res.Lost), res.Lost)
	}
	return res.Windowgram, nil
}

func editAdd(w *windowgram.Windowgram, args []string, _ editEnv) (*windowgram.Windowgram, error) {
	edge, err := flex.ParseEdge(args[0])
	if err != nil {
		return nil, err
	}
	base := w.Width()
	if edge.Vertical() {
		base = w.Height()
	}
	size, err := parseSize(args[1], base)
	if err != nil {
		return nil, err
	}
	var newpane byte
	if len(args) > 2 {
		if newpane, err = paneArg(args[2]); err != nil {
			return nil, err
		}
	}
	return flex.Add(w, edge, size, newpane)
}

func editBreak(w *windowgram.Windowgram, args []string, _ editEnv) (*windowgram.Windowgram, error) {
	id, err := paneArg(args[0])
	if err != nil {
		return nil, err
	}
	cols, rows, err := parseGrid(args[1])
	if err != nil {
		return nil, err
	}
	var newpanes string
	if len(args) > 2 {
		newpanes = args[2]
	}
	return flex.Break(w, id, cols, rows, newpanes)
}

func editJoin(w *windowgram.Windowgram, args []string, _ editEnv) (*windowgram.Windowgram, error) {
	groups := make([]flex.Group, len(args))
	for i, a := range args {
		g, err := flex.ParseGroup(a)
		if err != nil {
			return nil, err
		}
		groups[i] = g
	}
	return flex.Join(w, groups)
}

func editSplit(w *windowgram.Windowgram, args []string, _ editEnv) (*windowgram.Windowgram, error) {
	id, err := paneArg(args[0])
	if err != nil {
		return nil, err
	}
	edge, err := flex.ParseEdge(args[1])
	if err != nil {
		return nil, err
	}
	p, ok := w.Pane(id)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidPanes, "pane %c does not exist", id)
	}
	base := p.W
	if edge.Vertical() {
		base = p.H
	}
	sizeExpr := "50%"
	if len(args) > 2 {
		sizeExpr = args[2]
	}
	size, err := parseSize(sizeExpr, base)
	if err != nil {
		return nil, err
	}
	var newpanes string
	if len(args) > 3 {
		newpanes = args[3]
	}
	return flex.SplitPane(w, id, edge, size, newpanes)
}

// paneArg reads a single pane identifier argument.
func paneArg(s string) (byte, error) {
	if len(s) != 1 || !windowgram.IsPaneID(s[0]) {
		return 0, errors.New(errors.ErrCodeInvalidPanes, "invalid pane identifier %q", s)
	}
	return s[0], nil
}
