/*
 * confplot.go, part of goconformer.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goconformer is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package confplot draws the standard plots of a ring-pucker analysis:
//the 2D conformational map (phi vs theta, colored by the puckering
//amplitude), the puckering sphere as a pair of orthographic
//projections, and histograms of the conformations and amplitudes
//found. The plots are built with gonum/plot; the functions return the
//plots themselves so the caller can tweak them, and each has a Save
//companion that writes straight to a file.
package confplot

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"
	"strings"

	chem "github.com/rmera/goconformer"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//the single color used when every amplitude is the same and a color
//scale would be meaningless.
var flatColor = color.RGBA{R: 68, G: 119, B: 170, A: 255}

var refGray = color.RGBA{R: 150, G: 150, B: 150, A: 255}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//qColors returns one color per entry, mapping the amplitudes to the
//Moreland smooth blue-red scale. A list of identical amplitudes gets a
//flat color instead.
func qColors(list chem.PuckerList) []color.Color {
	qs := list.Qs()
	qmin, qmax := qs[0], qs[0]
	for _, v := range qs {
		qmin = math.Min(qmin, v)
		qmax = math.Max(qmax, v)
	}
	ret := make([]color.Color, len(qs))
	if qmax-qmin <= 1e-12 {
		for i := range ret {
			ret[i] = flatColor
		}
		return ret
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(qmin)
	cm.SetMax(qmax)
	for i, v := range qs {
		c, err := cm.At(v)
		if err != nil {
			c = flatColor
		}
		ret[i] = c
	}
	return ret
}

//puckerScatter builds a scatter of the given points, one per list
//entry, colored by the amplitudes.
func puckerScatter(list chem.PuckerList, pts plotter.XYs) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, Error{err.Error(), []string{"puckerScatter"}, true}
	}
	colors := qColors(list)
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: colors[i], Radius: vg.Points(2), Shape: draw.CircleGlyph{}}
	}
	return s, nil
}

// ThetaPhiMap returns the 2D conformational map of the list: one point
// per geometry at (phi, theta), both in degrees, colored by the
// puckering amplitude q. On this map the poles of a 6-ring (the chairs)
// are the horizontal edges, the equator (boats and twist-boats) is the
// middle, and phi runs over the pseudorotation.
func ThetaPhiMap(list chem.PuckerList, title string) (*plot.Plot, error) {
	if len(list) == 0 {
		return nil, Error{"empty pucker list", []string{"ThetaPhiMap"}, true}
	}
	if title == "" {
		title = "Ring puckering map"
	}
	p := basicPlot(fmt.Sprintf("%s (%d geometries)", title, len(list)), "phi (deg)", "theta (deg)")
	pts := make(plotter.XYs, len(list))
	for i, v := range list {
		pts[i].X = math.Mod(v.Phi, 360)
		if pts[i].X < 0 {
			pts[i].X += 360
		}
		pts[i].Y = v.Theta * 180 / math.Pi
	}
	s, err := puckerScatter(list, pts)
	if err != nil {
		return nil, errDecorate(err, "ThetaPhiMap")
	}
	p.Add(s)
	p.X.Min, p.X.Max = 0, 360
	p.Y.Min, p.Y.Max = 0, 180
	return p, nil
}

//circle returns n+1 points on a circle of radius r around the origin,
//closed.
func circle(r float64, n int) plotter.XYs {
	ret := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ret[i].X = r * math.Cos(a)
		ret[i].Y = r * math.Sin(a)
	}
	return ret
}

//addSphereRefs draws the silhouette of the reference sphere of radius r
//and its dashed diameters on p, and pins the axis ranges to a square
//around it.
func addSphereRefs(p *plot.Plot, r float64) error {
	outline, err := plotter.NewLine(circle(r, 120))
	if err != nil {
		return Error{err.Error(), []string{"addSphereRefs"}, true}
	}
	outline.LineStyle.Color = refGray
	p.Add(outline)
	diam := [][2]plotter.XY{
		{{X: -r, Y: 0}, {X: r, Y: 0}},
		{{X: 0, Y: -r}, {X: 0, Y: r}},
	}
	for _, d := range diam {
		l, err := plotter.NewLine(plotter.XYs{d[0], d[1]})
		if err != nil {
			return Error{err.Error(), []string{"addSphereRefs"}, true}
		}
		l.LineStyle.Color = refGray
		l.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(l)
	}
	p.X.Min, p.X.Max = -r, r
	p.Y.Min, p.Y.Max = -r, r
	return nil
}

// SphereProjection returns the puckering sphere of the list as two
// orthographic projections: the view down the polar axis (x vs y) and
// the view from the equator (x vs z), with x = q sin(theta) cos(phi),
// y = q sin(theta) sin(phi) and z = q cos(theta). Points are colored by
// q and a reference sphere of slightly more than the largest amplitude
// is drawn behind them. The two panels are meant to be laid side by
// side, which is what SaveSphereProjection does.
func SphereProjection(list chem.PuckerList, title string) (*plot.Plot, *plot.Plot, error) {
	if len(list) == 0 {
		return nil, nil, Error{"empty pucker list", []string{"SphereProjection"}, true}
	}
	if title == "" {
		title = "Puckering sphere"
	}
	xy := make(plotter.XYs, len(list))
	xz := make(plotter.XYs, len(list))
	maxq := 0.0
	for i, v := range list {
		phirad := v.Phi * math.Pi / 180
		x := v.Q * math.Sin(v.Theta) * math.Cos(phirad)
		y := v.Q * math.Sin(v.Theta) * math.Sin(phirad)
		z := v.Q * math.Cos(v.Theta)
		xy[i].X, xy[i].Y = x, y
		xz[i].X, xz[i].Y = x, z
		maxq = math.Max(maxq, v.Q)
	}
	r := maxq * 1.1
	if r <= 0 {
		r = 1.0 //all-planar list, show the unit sphere anyway
	}
	pxy := basicPlot(title+", polar view", "x (A)", "y (A)")
	pxz := basicPlot(title+", equatorial view", "x (A)", "z (A)")
	for _, pair := range []struct {
		p   *plot.Plot
		pts plotter.XYs
	}{{pxy, xy}, {pxz, xz}} {
		if err := addSphereRefs(pair.p, r); err != nil {
			return nil, nil, errDecorate(err, "SphereProjection")
		}
		s, err := puckerScatter(list, pair.pts)
		if err != nil {
			return nil, nil, errDecorate(err, "SphereProjection")
		}
		pair.p.Add(s)
	}
	return pxy, pxz, nil
}

// ConfHistogram returns a bar chart of the conformations in the list,
// most populated first. Unclassified entries (empty conformation codes)
// are left out; a list with nothing but those is an error.
func ConfHistogram(list chem.PuckerList, title string) (*plot.Plot, error) {
	if len(list) == 0 {
		return nil, Error{"empty pucker list", []string{"ConfHistogram"}, true}
	}
	counts := list.Counts()
	delete(counts, "")
	if len(counts) == 0 {
		return nil, Error{"no classified conformations in the list", []string{"ConfHistogram"}, true}
	}
	names := make([]string, 0, len(counts))
	for k := range counts {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	vals := make(plotter.Values, len(names))
	for i, v := range names {
		vals[i] = float64(counts[v])
	}
	if title == "" {
		title = "Conformations"
	}
	p := basicPlot(fmt.Sprintf("%s (%d geometries)", title, len(list)), "", "geometries")
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return nil, Error{err.Error(), []string{"ConfHistogram"}, true}
	}
	bars.Color = flatColor
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// QHistogram returns a histogram of the puckering amplitudes of the
// list, with the given number of bins (16 when nbins is not positive).
func QHistogram(list chem.PuckerList, title string, nbins int) (*plot.Plot, error) {
	if len(list) == 0 {
		return nil, Error{"empty pucker list", []string{"QHistogram"}, true}
	}
	if nbins <= 0 {
		nbins = 16
	}
	if title == "" {
		title = "Puckering amplitudes"
	}
	p := basicPlot(fmt.Sprintf("%s (%d geometries)", title, len(list)), "q (A)", "geometries")
	h, err := plotter.NewHist(plotter.Values(list.Qs()), nbins)
	if err != nil {
		return nil, Error{err.Error(), []string{"QHistogram"}, true}
	}
	h.FillColor = flatColor
	p.Add(h)
	return p, nil
}

// SaveThetaPhiMap writes the 2D conformational map of the list to a
// file with the given name, whose suffix (.png, .pdf, .svg...) picks
// the format.
func SaveThetaPhiMap(list chem.PuckerList, title, name string) error {
	p, err := ThetaPhiMap(list, title)
	if err != nil {
		return errDecorate(err, "SaveThetaPhiMap")
	}
	if err := p.Save(16*vg.Centimeter, 12*vg.Centimeter, name); err != nil {
		return Error{err.Error(), []string{"SaveThetaPhiMap"}, true}
	}
	return nil
}

// SaveSphereProjection writes the two projections of the puckering
// sphere side by side to a PNG file with the given name. Only PNG
// output is supported, as the panels are composed on a raster canvas.
func SaveSphereProjection(list chem.PuckerList, title, name string) error {
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		return Error{fmt.Sprintf("%s: the sphere projection can only be saved as png", name), []string{"SaveSphereProjection"}, true}
	}
	pxy, pxz, err := SphereProjection(list, title)
	if err != nil {
		return errDecorate(err, "SaveSphereProjection")
	}
	plots := [][]*plot.Plot{{pxy, pxz}}
	img := vgimg.New(24*vg.Centimeter, 12*vg.Centimeter)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: 2 * vg.Millimeter}
	canvases := plot.Align(plots, tiles, dc)
	pxy.Draw(canvases[0][0])
	pxz.Draw(canvases[0][1])
	f, ferr := os.Create(name)
	if ferr != nil {
		return Error{ferr.Error(), []string{"SaveSphereProjection"}, true}
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return Error{err.Error(), []string{"SaveSphereProjection"}, true}
	}
	return nil
}

// SaveConfHistogram writes the conformation bar chart of the list to a
// file with the given name, whose suffix picks the format.
func SaveConfHistogram(list chem.PuckerList, title, name string) error {
	p, err := ConfHistogram(list, title)
	if err != nil {
		return errDecorate(err, "SaveConfHistogram")
	}
	if err := p.Save(16*vg.Centimeter, 12*vg.Centimeter, name); err != nil {
		return Error{err.Error(), []string{"SaveConfHistogram"}, true}
	}
	return nil
}

// SaveQHistogram writes the amplitude histogram of the list to a file
// with the given name, whose suffix picks the format.
func SaveQHistogram(list chem.PuckerList, title string, nbins int, name string) error {
	p, err := QHistogram(list, title, nbins)
	if err != nil {
		return errDecorate(err, "SaveQHistogram")
	}
	if err := p.Save(16*vg.Centimeter, 12*vg.Centimeter, name); err != nil {
		return Error{err.Error(), []string{"SaveQHistogram"}, true}
	}
	return nil
}

//Errors

//errDecorate asserts that the error implements chem.Error and decorates
//it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(chem.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for plotting errors. It fulfills
//chem.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("plot error: %s", err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }
