package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/antgeom/internal/geometry"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Layer colors of the preview canvas.
var (
	colorSubstrate   = color.RGBA{R: 218, G: 165, B: 32, A: 255} // goldenrod
	colorSuperstrate = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	colorConductor   = color.RGBA{R: 255, G: 165, B: 0, A: 255} // orange
	colorDipole      = color.RGBA{R: 191, G: 0, B: 191, A: 255}
	colorMonopole    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// ExportLayers renders the layers of a generation, projected onto pl, to an
// image file. The format follows the extension (.png, .svg, .pdf); any other
// extension gets ".png" appended.
func ExportLayers(gen *geometry.Generation, pl Plane, unit, filename string) error {
	p, err := layersPlot(gen, pl, unit)
	if err != nil {
		return err
	}

	return save(p, 8*vg.Inch, 8*vg.Inch, filename)
}

// save writes p to filename, creating its directory. The format follows the
// extension (.png, .svg, .pdf); any other extension gets ".png" appended.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func layersPlot(gen *geometry.Generation, pl Plane, unit string) (*plot.Plot, error) {
	p := plot.New()
	hl, vl := pl.labels()
	p.Title.Text = fmt.Sprintf("%s (%s-%s plane)", gen.Topology, hl, vl)
	p.X.Label.Text = fmt.Sprintf("%s_size (%s)", hl, unit)
	p.Y.Label.Text = fmt.Sprintf("%s_size (%s)", vl, unit)

	hr, vr := pl.ranges(gen.View)
	p.X.Min, p.X.Max = hr[0], hr[1]
	p.Y.Min, p.Y.Max = vr[0], vr[1]

	for _, s := range gen.Layers.Substrate {
		if err := addShape(p, s, pl, colorSubstrate); err != nil {
			return nil, err
		}
	}
	for _, s := range gen.Layers.Superstrate {
		if err := addShape(p, s, pl, colorSuperstrate); err != nil {
			return nil, err
		}
	}
	solidColor := colorMonopole
	if gen.Topology == geometry.HalfWaveDipole {
		solidColor = colorDipole
	}
	for _, m := range gen.Layers.Solids {
		poly, err := plotter.NewPolygon(xys(silhouette(m, pl), pl))
		if err != nil {
			return nil, err
		}
		poly.Color = color.NRGBA{R: solidColor.R, G: solidColor.G, B: solidColor.B, A: 190}
		poly.LineStyle.Color = solidColor
		p.Add(poly)
	}
	for _, s := range gen.Layers.Conductor {
		if err := addShape(p, s, pl, colorConductor); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// addShape draws an outline, closing it the way the coordinate split does,
// or a marker for a single point.
func addShape(p *plot.Plot, s geometry.Shape, pl Plane, c color.Color) error {
	if len(s) == 1 {
		sc, err := plotter.NewScatter(xys(s, pl))
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = c
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		return nil
	}

	xs, ys, zs := geometry.SplitAndClose(s)
	vs := ys
	if pl == PlaneXZ {
		vs = zs
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: vs[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	p.Add(line)
	return nil
}

func xys(s geometry.Shape, pl Plane) plotter.XYs {
	pts := make(plotter.XYs, len(s))
	for i, v := range s {
		pts[i].X, pts[i].Y = pl.project(v)
	}
	return pts
}

// ExportOutline renders a two dimensional top layer outline, the geometry
// handed to manufacturing exports. Files are named as for ExportLayers.
func ExportOutline(out geometry.Outline, unit, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s patch top layer", out.Feed)
	p.X.Label.Text = fmt.Sprintf("x (%s)", unit)
	p.Y.Label.Text = fmt.Sprintf("y (%s)", unit)

	pts := make(plotter.XYs, len(out.Boundary))
	for i, v := range out.Boundary {
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return err
	}
	poly.Color = color.Black
	p.Add(poly)

	if out.Pin != nil {
		pin, err := plotter.NewScatter(plotter.XYs{{X: out.Pin.X, Y: out.Pin.Y}})
		if err != nil {
			return err
		}
		pin.GlyphStyle.Color = color.White
		pin.GlyphStyle.Radius = vg.Points(3)
		pin.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(pin)
	}
	p.HideAxes()

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}
