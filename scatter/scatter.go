// SPDX-License-Identifier: MIT

// Package scatter renders point sets as 2D scatter plots with gonum/plot.
//
// Typical use is a side-by-side figure of an original point set and its
// reconstruction (SaveSideBySide); single figures are written by Save in any
// format gonum/plot supports (png, svg, pdf, ...), selected by extension.
package scatter

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/rebuildmap/distgeom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoSeries indicates a plot request without any series.
var ErrNoSeries = errors.New("scatter: no series")

// DefaultRadius is the glyph radius of every point.
const DefaultRadius = vg.Length(3)

// Series is one named point set. A nil Color picks a palette color by position.
type Series struct {
	Name    string
	Points  []distgeom.Point
	Color   color.Color
	Labeled bool // annotate each point with its index
}

// Panel is one titled plot of a side-by-side figure.
type Panel struct {
	Title  string
	Series []Series
}

type xys []distgeom.Point

func (p xys) Len() int                { return len(p) }
func (p xys) XY(i int) (x, y float64) { return p[i].X, p[i].Y }

// Plot builds a plot with one scatter layer per series.
func Plot(title string, series ...Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for i, s := range series {
		sc, err := plotter.NewScatter(xys(s.Points))
		if err != nil {
			return nil, fmt.Errorf("scatter: series %q: %w", s.Name, err)
		}
		sc.GlyphStyle.Color = s.Color
		if sc.GlyphStyle.Color == nil {
			sc.GlyphStyle.Color = plotutil.Color(i)
		}
		sc.GlyphStyle.Radius = DefaultRadius
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		if s.Name != "" {
			p.Legend.Add(s.Name, sc)
		}

		if s.Labeled && len(s.Points) > 0 {
			labels, err := indexLabels(s.Points)
			if err != nil {
				return nil, fmt.Errorf("scatter: series %q: %w", s.Name, err)
			}
			p.Add(labels)
		}
	}

	return p, nil
}

func indexLabels(pts []distgeom.Point) (*plotter.Labels, error) {
	xy := make(plotter.XYs, len(pts))
	text := make([]string, len(pts))
	for i, pt := range pts {
		xy[i] = plotter.XY{X: pt.X, Y: pt.Y}
		text[i] = strconv.Itoa(i)
	}

	return plotter.NewLabels(plotter.XYLabels{XYs: xy, Labels: text})
}

// Save renders the series to path; the format follows the extension.
func Save(path string, width, height vg.Length, title string, series ...Series) error {
	p, err := Plot(title, series...)
	if err != nil {
		return err
	}

	return p.Save(width, height, path)
}

// SaveSideBySide renders two panels next to each other as a PNG.
func SaveSideBySide(path string, width, height vg.Length, left, right Panel) (err error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".png" {
		return fmt.Errorf("scatter: side-by-side output must be .png, got %q", ext)
	}

	lp, err := Plot(left.Title, left.Series...)
	if err != nil {
		return err
	}
	rp, err := Plot(right.Title, right.Series...)
	if err != nil {
		return err
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: 2,
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{{lp, rp}}, tiles, dc)
	lp.Draw(canvases[0][0])
	rp.Draw(canvases[0][1])

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(f)

	return err
}
