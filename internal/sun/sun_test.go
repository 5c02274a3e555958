package sun

import (
	"testing"
	"time"

	"github.com/jmoralesv/sombra/internal/model"
	"github.com/stretchr/testify/assert"
)

const (
	testLat = 40.4168 // Madrid
	testLon = -3.7038
)

// skyDome is a shadow covering every direction of sky.
func skyDome() model.Shadow {
	return model.Shadow{
		ID:        "dome",
		DownLeft:  model.AngularPoint{Azimut: -180, Elevation: 0},
		UpLeft:    model.AngularPoint{Azimut: -180, Elevation: 90},
		UpRight:   model.AngularPoint{Azimut: 180, Elevation: 90},
		DownRight: model.AngularPoint{Azimut: 180, Elevation: 0},
	}
}

func TestPosition_SummerNoon(t *testing.T) {
	noon := time.Date(2023, 6, 21, 12, 0, 0, 0, time.UTC)
	p := Position(noon, testLat, testLon)
	assert.Greater(t, p.Altitude, 60.0, "midsummer noon sun stands high")
	assert.InDelta(t, 0, p.Azimut, 25.0, "around noon the sun is roughly due south")
}

func TestPosition_AzimuthRange(t *testing.T) {
	start := time.Date(2023, 3, 20, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 24; h++ {
		p := Position(start.Add(time.Duration(h)*time.Hour), testLat, testLon)
		assert.GreaterOrEqual(t, p.Azimut, -180.0)
		assert.Less(t, p.Azimut, 180.0)
	}
}

func TestLit(t *testing.T) {
	noon := Position(time.Date(2023, 6, 21, 12, 0, 0, 0, time.UTC), testLat, testLon)
	assert.True(t, Lit(nil, noon), "open sky at noon")
	assert.False(t, Lit([]model.Shadow{skyDome()}, noon), "a full dome blocks everything")

	midnight := Position(time.Date(2023, 6, 21, 0, 0, 0, 0, time.UTC), testLat, testLon)
	assert.False(t, Lit(nil, midnight), "the sun below the horizon never lights the point")
}

func TestDirectSunHours(t *testing.T) {
	date := time.Date(2023, 6, 21, 0, 0, 0, 0, time.UTC)

	open := DirectSunHours(nil, testLat, testLon, date)
	assert.Greater(t, open, 10*time.Hour, "a midsummer day in Madrid brings long daylight")
	assert.Less(t, open, 18*time.Hour)

	blocked := DirectSunHours([]model.Shadow{skyDome()}, testLat, testLon, date)
	assert.Equal(t, time.Duration(0), blocked)
}

func TestPath(t *testing.T) {
	date := time.Date(2023, 12, 21, 0, 0, 0, 0, time.UTC)
	path := Path(testLat, testLon, date, 10*time.Minute)
	assert.NotEmpty(t, path)
	for _, p := range path {
		assert.Greater(t, p.Altitude, 0.0)
	}
}
