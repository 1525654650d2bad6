package split

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// DOT converts the split tree of a plan to Graphviz DOT.
//
// Regions are boxes labelled with their linkid and final destination index;
// edges run from a parent region to the region split off it, labelled with
// axis and percentage. Panes hang off the region they were linked to.
// Unsupported regions are drawn dashed.
func (p *Plan) DOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph split {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, l := range p.Links {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", regionNode(l.LinkID), fmt.Sprintf("%d\nindex %d", l.LinkID, l.Index))
	}
	for _, a := range p.Assignments {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, fillcolor=lightblue];\n",
			paneNode(a.Pane.ID), fmt.Sprintf("%c\n%dx%d", a.Pane.ID, a.Canvas.W, a.Canvas.H))
	}
	for i, r := range p.Unsupported {
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,dashed\"];\n",
			fmt.Sprintf("unsupported%d", i), "unsupported\n"+r.String())
	}

	buf.WriteString("\n")
	for _, s := range p.Splits {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n",
			regionNode(s.Parent), regionNode(s.LinkID), fmt.Sprintf("%c %.1f%%", s.Axis, s.Percent))
	}
	for _, a := range p.Assignments {
		fmt.Fprintf(&buf, "  %q -> %q [style=dotted];\n", regionNode(a.LinkID), paneNode(a.Pane.ID))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func regionNode(linkid int) string { return "r" + strconv.Itoa(linkid) }

func paneNode(id byte) string { return "p" + string(id) }

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the diagram scales cleanly
// when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
