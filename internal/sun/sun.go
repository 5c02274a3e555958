// Package sun evaluates sun positions against a reduced shadow list: is the
// observation point lit at a given moment, and how many hours of direct sun
// does a day bring. Positions come from the suncalc library, whose azimuth
// convention (0 = south, west positive, radians) matches the engine's
// degree convention directly.
package sun

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/jmoralesv/sombra/internal/model"
)

const rad2deg = 180 / math.Pi

// Pos is the sun's direction at one moment. Unlike the engine's angular
// points, Altitude keeps its sign: negative means the sun is below the
// horizon.
type Pos struct {
	T        time.Time
	Azimut   float64
	Altitude float64
}

// Position returns the sun position for the given moment and location.
// Latitude and longitude are in degrees, north and east positive.
func Position(t time.Time, latitude, longitude float64) Pos {
	p := suncalc.GetPosition(t, latitude, longitude)
	return Pos{
		T:        t,
		Azimut:   model.NewAzimuth(p.Azimuth * rad2deg).Degrees(),
		Altitude: p.Altitude * rad2deg,
	}
}

// Lit reports whether the sun at pos reaches the observation point: above
// the horizon and outside every shadow's bounding box.
func Lit(shadows []model.Shadow, pos Pos) bool {
	if pos.Altitude <= 0 {
		return false
	}
	for _, s := range shadows {
		if s.Box().Contains(pos.Azimut, pos.Altitude) {
			return false
		}
	}
	return true
}

// DirectSunHours samples the civil day of date minute by minute and returns
// the total duration during which the observation point is lit.
func DirectSunHours(shadows []model.Shadow, latitude, longitude float64, date time.Time) time.Duration {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	var total time.Duration
	for t := day; t.Day() == day.Day(); t = t.Add(time.Minute) {
		if Lit(shadows, Position(t, latitude, longitude)) {
			total += time.Minute
		}
	}
	return total
}

// Path samples the sun's above-horizon track for one day at the given step,
// for charting against the shadow map.
func Path(latitude, longitude float64, date time.Time, step time.Duration) []Pos {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	var path []Pos
	for t := day; t.Day() == day.Day(); t = t.Add(step) {
		p := Position(t, latitude, longitude)
		if p.Altitude > 0 {
			path = append(path, p)
		}
	}
	return path
}
