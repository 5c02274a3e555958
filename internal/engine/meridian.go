package engine

import (
	"math"
	"sort"

	"github.com/jmoralesv/sombra/internal/model"
)

// The azimuth convention wraps at ±180°, the direction due north of the
// observer. A wall whose projection straddles that cut would produce a
// bounding box spanning nearly the whole azimuth range, so such walls are
// split along the vertical plane x = observer.x before projection and each
// half is projected on its own side of the cut.

// meridianSide identifies which side of the cut a (half) quad lies on,
// classified by the sign of x - observer.x.
type meridianSide int

const (
	sideEast meridianSide = iota // negative x offsets
	sideWest                     // non-negative x offsets
)

// azimuthCutEpsilon decides when a projected corner sits on the cut itself.
const azimuthCutEpsilon = 1e-6

// IsOnMeridian reports whether any corner of the quad lies exactly on the
// vertical plane of the cut, due north or south of the observer.
func IsOnMeridian(observer model.Point3D, quad model.WallQuad) bool {
	for _, c := range quad.Corners() {
		if c.X == observer.X {
			return true
		}
	}
	return false
}

// edgeCrossesMeridian reports whether the segment p1-p2 crosses the cut
// north of the observer: the endpoints must lie on strictly opposite sides
// of x = observer.x and the interpolated crossing must satisfy y > observer.y.
// Crossings south of the observer pass through azimuth 0 and are harmless.
func edgeCrossesMeridian(observer, p1, p2 model.Point3D) bool {
	d1 := p1.X - observer.X
	d2 := p2.X - observer.X
	if !(d1 < 0 && d2 > 0) && !(d1 > 0 && d2 < 0) {
		return false
	}
	t := (observer.X - p1.X) / (p2.X - p1.X)
	y := p1.Y + t*(p2.Y-p1.Y)
	return y > observer.Y
}

// QuadCrossesMeridian reports whether any of the quad's four edges crosses
// the cut north of the observer. A well-formed crossing quad has exactly
// two such edges.
func QuadCrossesMeridian(observer model.Point3D, quad model.WallQuad) bool {
	c := quad.Corners()
	for i := range c {
		if edgeCrossesMeridian(observer, c[i], c[(i+1)%len(c)]) {
			return true
		}
	}
	return false
}

// SplitAtMeridian cuts a crossing quad into an east half and a west half
// that share the two edge/cut intersection points. It fails (ok = false)
// unless the quad has exactly two crossing edges and two corners on each
// side; the caller then falls back to projecting the quad unsplit.
func SplitAtMeridian(observer model.Point3D, quad model.WallQuad) (east, west model.WallQuad, ok bool) {
	corners := quad.Corners()

	var crossings []model.Point3D
	for i := range corners {
		p1 := corners[i]
		p2 := corners[(i+1)%len(corners)]
		if !edgeCrossesMeridian(observer, p1, p2) {
			continue
		}
		t := (observer.X - p1.X) / (p2.X - p1.X)
		crossings = append(crossings, model.Point3D{
			X: observer.X,
			Y: p1.Y + t*(p2.Y-p1.Y),
			Z: p1.Z + t*(p2.Z-p1.Z),
		})
	}
	if len(crossings) != 2 {
		return model.WallQuad{}, model.WallQuad{}, false
	}

	var eastCorners, westCorners []model.Point3D
	for _, c := range corners {
		if c.X-observer.X < 0 {
			eastCorners = append(eastCorners, c)
		} else {
			westCorners = append(westCorners, c)
		}
	}
	if len(eastCorners) != 2 || len(westCorners) != 2 {
		return model.WallQuad{}, model.WallQuad{}, false
	}

	// Lower corner first. For vertical walls both partition corners share
	// (x, y), so z breaks the tie.
	sortByYThenZ(eastCorners)
	sortByYThenZ(westCorners)
	sort.Slice(crossings, func(i, j int) bool {
		if crossings[i].Z != crossings[j].Z {
			return crossings[i].Z < crossings[j].Z
		}
		return crossings[i].Y < crossings[j].Y
	})

	half := func(own []model.Point3D) model.WallQuad {
		return model.WallQuad{
			ID:           quad.ID,
			GroupID:      quad.GroupID,
			CadastralRef: quad.CadastralRef,
			DownLeft:     own[0],
			UpLeft:       own[1],
			UpRight:      crossings[1],
			DownRight:    crossings[0],
		}
	}
	return half(eastCorners), half(westCorners), true
}

func sortByYThenZ(points []model.Point3D) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].Z < points[j].Z
	})
}

// classifySide classifies a quad by the mean of its corners' x offsets from
// the observer.
func classifySide(observer model.Point3D, quad model.WallQuad) meridianSide {
	var sum float64
	for _, c := range quad.Corners() {
		sum += c.X - observer.X
	}
	if sum/4 < 0 {
		return sideEast
	}
	return sideWest
}

// correctSign pins corners that landed on the azimuth cut to the extreme
// matching the rest of the half. A corner interpolated onto the plane
// x = observer.x projects to exactly -180°, while the half's own corners
// sit just shy of +180° on the east side (negative x offsets) and just past
// -180° on the west side; without the correction an east half's bounding
// box would span the entire azimuth range.
func correctSign(shadow *model.Shadow, side meridianSide) {
	expected := -180.0
	if side == sideEast {
		expected = 180.0
	}
	fix := func(p *model.AngularPoint) {
		if math.Abs(math.Abs(p.Azimut)-180) < azimuthCutEpsilon {
			p.Azimut = expected
		}
	}
	fix(&shadow.DownLeft)
	fix(&shadow.UpLeft)
	fix(&shadow.UpRight)
	fix(&shadow.DownRight)
}

// ComputeShadow projects one wall quad into one or two shadows. Quads
// touching the cut are projected directly and sign-corrected; quads
// crossing it are split and each half projected on its own side. Everything
// else projects directly. The dispatch is strict: a quad takes exactly one
// of the three paths.
func ComputeShadow(observer model.Point3D, quad model.WallQuad) []model.Shadow {
	if IsOnMeridian(observer, quad) {
		shadow := Project(observer, quad)
		correctSign(&shadow, classifySide(observer, quad))
		return []model.Shadow{shadow}
	}
	if QuadCrossesMeridian(observer, quad) {
		east, west, ok := SplitAtMeridian(observer, quad)
		if !ok {
			// Degenerate crossing; project unsplit rather than abort.
			return []model.Shadow{Project(observer, quad)}
		}
		eastShadow := Project(observer, east)
		correctSign(&eastShadow, sideEast)
		westShadow := Project(observer, west)
		correctSign(&westShadow, sideWest)
		return []model.Shadow{eastShadow, westShadow}
	}
	return []model.Shadow{Project(observer, quad)}
}
