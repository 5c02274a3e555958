package export

import (
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jmoralesv/sombra/internal/model"
	"github.com/jmoralesv/sombra/internal/sun"
)

// ShadowChart renders the shadow map as a PNG: one filled polygon per
// shadow bounding box over the azimuth/elevation plane. When the site has a
// location set, the solstice and equinox sun paths are overlaid so the
// reader can see which parts of the year the obstructions matter.
func ShadowChart(path string, site model.Site, shadows []model.Shadow) error {
	plt := plot.New()
	plt.Title.Text = site.Name
	plt.X.Label.Text = "Azimuth (deg, 0 = south)"
	plt.Y.Label.Text = "Elevation (deg)"
	plt.X.Min, plt.X.Max = -180, 180
	plt.Y.Min, plt.Y.Max = 0, 90

	for _, s := range shadows {
		b := s.Box()
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: b.MinAzimut, Y: b.MinElevation},
			{X: b.MaxAzimut, Y: b.MinElevation},
			{X: b.MaxAzimut, Y: b.MaxElevation},
			{X: b.MinAzimut, Y: b.MaxElevation},
		})
		if err != nil {
			return err
		}
		poly.Color = color.NRGBA{R: 90, G: 105, B: 120, A: 160}
		poly.LineStyle.Width = 0
		plt.Add(poly)
	}

	if site.Latitude != 0 || site.Longitude != 0 {
		if err := addSunPaths(plt, site); err != nil {
			return err
		}
	}

	return plt.Save(24*vg.Centimeter, 12*vg.Centimeter, path)
}

// addSunPaths overlays the sun tracks of the two solstices and the spring
// equinox.
func addSunPaths(plt *plot.Plot, site model.Site) error {
	year := time.Now().Year()
	days := []struct {
		date  time.Time
		color color.RGBA
	}{
		{time.Date(year, 6, 21, 0, 0, 0, 0, time.UTC), color.RGBA{R: 230, G: 160, B: 0, A: 255}},
		{time.Date(year, 3, 20, 0, 0, 0, 0, time.UTC), color.RGBA{R: 200, G: 90, B: 0, A: 255}},
		{time.Date(year, 12, 21, 0, 0, 0, 0, time.UTC), color.RGBA{R: 160, G: 40, B: 40, A: 255}},
	}
	for _, d := range days {
		path := sun.Path(site.Latitude, site.Longitude, d.date, 10*time.Minute)
		if len(path) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(path))
		for i, p := range path {
			xys[i] = plotter.XY{X: p.Azimut, Y: p.Altitude}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = d.color
		line.Width = vg.Points(1.5)
		plt.Add(line)
	}
	return nil
}
