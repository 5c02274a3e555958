package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/jmoralesv/sombra/internal/model"
)

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed footprints.
type segment struct {
	start model.Point2D
	end   model.Point2D
}

// ImportDXF imports building footprints from a DXF drawing. Each closed
// shape (LWPOLYLINE or chain of connected LINEs) becomes a building with
// the given default height code; drawing units are taken as meters in the
// site's planar frame.
func ImportDXF(path, defaultHeightCode string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var rings []model.Ring
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			ring := lwPolylineToRing(e)
			if len(ring) >= 3 {
				rings = append(rings, ring)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	for _, ring := range chainSegments(segments, 0.01) {
		if len(ring) >= 3 {
			rings = append(rings, ring)
		}
	}

	if len(rings) == 0 {
		result.Errors = append(result.Errors, "No closed footprints found in DXF file")
		return result
	}

	for _, ring := range rings {
		min, max := ring.BoundingBox()
		if max.X-min.X < 0.01 || max.Y-min.Y < 0.01 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate footprint (%.2f x %.2f m)", max.X-min.X, max.Y-min.Y))
			continue
		}
		result.Buildings = append(result.Buildings, model.NewBuilding(defaultHeightCode, ring))
	}
	return result
}

// lwPolylineToRing converts a DXF LWPOLYLINE entity to an open ring,
// dropping a duplicated closing vertex if present.
func lwPolylineToRing(lw *entity.LwPolyline) model.Ring {
	var ring model.Ring
	for _, v := range lw.Vertices {
		ring = append(ring, model.Point2D{X: v[0], Y: v[1]})
	}
	if len(ring) > 1 && pointsClose(ring[0], ring[len(ring)-1], 1e-9) {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// chainSegments joins loose segments into closed rings. Segments connect
// when their endpoints lie within tolerance of each other; chains that fail
// to close are dropped.
func chainSegments(segments []segment, tolerance float64) []model.Ring {
	used := make([]bool, len(segments))
	var rings []model.Ring

	for i := range segments {
		if used[i] {
			continue
		}
		used[i] = true
		ring := model.Ring{segments[i].start}
		current := segments[i].end

		for {
			if pointsClose(current, ring[0], tolerance) {
				rings = append(rings, ring)
				break
			}
			next := -1
			flip := false
			for j := range segments {
				if used[j] {
					continue
				}
				if pointsClose(segments[j].start, current, tolerance) {
					next = j
					break
				}
				if pointsClose(segments[j].end, current, tolerance) {
					next = j
					flip = true
					break
				}
			}
			if next == -1 {
				// Open chain; not a footprint.
				break
			}
			used[next] = true
			ring = append(ring, current)
			if flip {
				current = segments[next].start
			} else {
				current = segments[next].end
			}
		}
	}
	return rings
}

func pointsClose(a, b model.Point2D, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance && math.Abs(a.Y-b.Y) <= tolerance
}
