package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/antgeom/internal/geometry"
)

// Glyphs used by the ASCII canvas, later layers drawn over earlier ones.
const (
	glyphSubstrate   = '·'
	glyphSuperstrate = '+'
	glyphConductor   = '█'
	glyphSolid       = '▓'
	glyphFeed        = '●'
)

// canvas is a character raster covering a fixed window of a plane.
type canvas struct {
	cols, rows int
	h, v       [2]float64
	cells      [][]rune
}

func newCanvas(cols, rows int, h, v [2]float64) *canvas {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &canvas{cols: cols, rows: rows, h: h, v: v, cells: cells}
}

// cell maps plane coordinates to a column and row. Row 0 is the top of the
// window.
func (c *canvas) cell(h, v float64) (col, row int, ok bool) {
	dh := c.h[1] - c.h[0]
	dv := c.v[1] - c.v[0]
	if dh <= 0 || dv <= 0 {
		return 0, 0, false
	}
	col = int(math.Floor((h - c.h[0]) / dh * float64(c.cols-1)))
	row = c.rows - 1 - int(math.Floor((v-c.v[0])/dv*float64(c.rows-1)))
	ok = col >= 0 && col < c.cols && row >= 0 && row < c.rows
	return col, row, ok
}

func (c *canvas) plot(h, v float64, g rune) {
	if col, row, ok := c.cell(h, v); ok {
		c.cells[row][col] = g
	}
}

// line draws a segment by sampling it at sub-cell spacing.
func (c *canvas) line(h0, v0, h1, v1 float64, g rune) {
	c0, r0, _ := c.cell(h0, v0)
	c1, r1, _ := c.cell(h1, v1)
	steps := max(abs(c1-c0), abs(r1-r0))*2 + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(h0+(h1-h0)*t, v0+(v1-v0)*t, g)
	}
}

func (c *canvas) shape(s geometry.Shape, pl Plane, g rune) {
	if len(s) == 1 {
		h, v := pl.project(s[0])
		c.plot(h, v, glyphFeed)
		return
	}
	closed := s
	if len(s) > 2 {
		closed = append(closed[:len(s):len(s)], s[0])
	}
	for i := 1; i < len(closed); i++ {
		h0, v0 := pl.project(closed[i-1])
		h1, v1 := pl.project(closed[i])
		c.line(h0, v0, h1, v1, g)
	}
}

// DrawLayers renders the layers of a generation as a framed ASCII diagram
// in the given plane, scaled to the generation's view volume.
func DrawLayers(gen *geometry.Generation, pl Plane, cols, rows int) string {
	var sb strings.Builder

	hr, vr := pl.ranges(gen.View)
	c := newCanvas(cols, rows, hr, vr)
	for _, s := range gen.Layers.Substrate {
		c.shape(s, pl, glyphSubstrate)
	}
	for _, s := range gen.Layers.Superstrate {
		c.shape(s, pl, glyphSuperstrate)
	}
	for _, m := range gen.Layers.Solids {
		c.shape(silhouette(m, pl), pl, glyphSolid)
	}
	for _, s := range gen.Layers.Conductor {
		c.shape(s, pl, glyphConductor)
	}

	hl, vl := pl.labels()
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s (%s-%s PLANE)\n", strings.ToUpper(string(gen.Topology)), hl, vl))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", cols+2)))
	sb.WriteString(fmt.Sprintf("  ┌%s┐ %s = %.2f\n", strings.Repeat("─", cols), vl, vr[1]))
	for _, row := range c.cells {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘ %s = %.2f\n", strings.Repeat("─", cols), vl, vr[0]))
	sb.WriteString(fmt.Sprintf("   %s = %.2f%s%s = %.2f\n", hl, hr[0], strings.Repeat(" ", max(cols-24, 1)), hl, hr[1]))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  %c = Substrate   %c = Superstrate   %c = Conductor\n", glyphSubstrate, glyphSuperstrate, glyphConductor))
	sb.WriteString(fmt.Sprintf("  %c = Wire arm    %c = Feed point\n", glyphSolid, glyphFeed))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
