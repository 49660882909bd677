package utree

import (
	"fmt"
	"io"
)

// Rendering geometry, in millimetres on the SVG canvas.
const (
	renderStep   = 15.0 // distance between tree levels and between leaves
	renderMargin = 8.0  // left margin before the first leaf
	renderTopPad = 5.0  // top margin above the root
)

// WriteMappings dumps the per-vertex tree signatures of both players as
// semicolon-separated lines: vertex;[sign, (path)];[sign, (path)].
func (a *Agent) WriteMappings(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "vertex;even;odd"); err != nil {
		return fmt.Errorf("utree: writing mappings header: %w", err)
	}
	for v := 0; v < a.size; v++ {
		_, err := fmt.Fprintf(w, "%d;[%s, (%s)];[%s, (%s)]\n",
			v,
			a.mapSign[2*v].String(), a.PathString(a.mapSlot[2*v]),
			a.mapSign[2*v+1].String(), a.PathString(a.mapSlot[2*v+1]))
		if err != nil {
			return fmt.Errorf("utree: writing mappings row: %w", err)
		}
	}

	return nil
}

// WriteHTML renders player pl's tree as an HTML page with an inline SVG:
// a circle per node, lines to its kids, and the top/side attractor markers
// next to every node. Diagnostics only; the format carries no stability
// promise.
func (a *Agent) WriteHTML(w io.Writer, pl int) error {
	root := a.trees[pl]
	for a.buffer[root].parent != -1 {
		root = a.buffer[root].parent
	}

	// Leaves get evenly spaced x positions; inner nodes sit centered above
	// their kids, one renderStep lower per generation.
	xs := make(map[int]float64)
	ys := make(map[int]float64)
	nextX := renderMargin
	depth := a.placeNodes(root, 0, &nextX, xs, ys)

	width := nextX + renderStep
	height := float64(depth)*renderStep + 2*renderTopPad

	title := "Even tree"
	if pl == 1 {
		title = "Odd tree"
	}
	if _, err := fmt.Fprintf(w,
		"<!DOCTYPE html>\n<html>\n<body>\n<h1> %s</h1>\n<svg width=\"%.1fmm\" height=\"%.1fmm\">\n",
		title, width, height); err != nil {
		return fmt.Errorf("utree: writing html header: %w", err)
	}
	if err := a.writeNodeSVG(w, root, xs, ys); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "</svg>\n</body>\n</html>\n"); err != nil {
		return fmt.Errorf("utree: writing html footer: %w", err)
	}

	return nil
}

// placeNodes assigns coordinates bottom-up: leaves take the next free x
// slot, inner nodes average their kids. Returns the subtree depth.
func (a *Agent) placeNodes(id, depth int, nextX *float64, xs, ys map[int]float64) int {
	ys[id] = renderTopPad + float64(depth)*renderStep

	kids := a.buffer[id].kids
	if len(kids) == 0 {
		xs[id] = *nextX
		*nextX += renderStep

		return depth + 1
	}

	maxDepth := depth + 1
	sum := 0.0
	for _, kid := range kids {
		if d := a.placeNodes(kid, depth+1, nextX, xs, ys); d > maxDepth {
			maxDepth = d
		}
		sum += xs[kid]
	}
	xs[id] = sum / float64(len(kids))

	return maxDepth
}

// writeNodeSVG emits the circle for id, the connecting lines, and the red
// top / green side attractor markers, then recurses into the kids.
func (a *Agent) writeNodeSVG(w io.Writer, id int, xs, ys map[int]float64) error {
	x, y := xs[id], ys[id]
	if _, err := fmt.Fprintf(w, "<circle cx=\"%.1fmm\" cy=\"%.1fmm\" r=\"1mm\" />\n", x, y); err != nil {
		return fmt.Errorf("utree: writing svg node: %w", err)
	}
	for _, kid := range a.buffer[id].kids {
		if _, err := fmt.Fprintf(w,
			"<line x1=\"%.1fmm\" y1=\"%.1fmm\" x2=\"%.1fmm\" y2=\"%.1fmm\" stroke=\"black\"/>\n",
			x, y, xs[kid], ys[kid]); err != nil {
			return fmt.Errorf("utree: writing svg edge: %w", err)
		}
		if err := a.writeNodeSVG(w, kid, xs, ys); err != nil {
			return err
		}
	}

	markers := []struct {
		dx, dy float64
		color  string
	}{
		{+5, -2, "red"},   // top attractor
		{-5, +2, "green"}, // side attractor
	}
	for _, m := range markers {
		if _, err := fmt.Fprintf(w,
			"<circle cx=\"%.1fmm\" cy=\"%.1fmm\" r=\"1mm\" fill=\"%s\"/>\n<line x1=\"%.1fmm\" y1=\"%.1fmm\" x2=\"%.1fmm\" y2=\"%.1fmm\" stroke=\"%s\"/>\n",
			x+m.dx, y+m.dy, m.color, x, y, x+m.dx, y+m.dy, m.color); err != nil {
			return fmt.Errorf("utree: writing svg marker: %w", err)
		}
	}

	return nil
}
