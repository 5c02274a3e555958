package engine

import "github.com/jmoralesv/sombra/internal/model"

const (
	// irrelevantAzimuthLimit bounds the azimuth bands the analysis never
	// cares about: directions beyond ±123° of due south receive no usable
	// sun at the latitudes the application targets. Shadows entirely inside
	// [-180, -123] or [123, 180] are dropped.
	irrelevantAzimuthLimit = 123.0

	// containmentMargin absorbs float noise when one bounding box is tested
	// for containment inside another.
	containmentMargin = 1e-9

	// The coverage grid rasterizes the sky dome at one cell per integer
	// degree: azimuth in [-180, 180) by elevation in [0, 90).
	gridAzimuthCells   = 360
	gridElevationCells = 90
)

// Reduce removes redundant shadows from the list, preserving order and the
// exact rasterized sky coverage of the input. Three passes run in sequence:
// pairwise bounding-box containment, the fixed irrelevant azimuth bands,
// and coverage-equivalence on the integer-degree grid. Lists of 0 or 1
// shadows are returned unchanged.
func Reduce(shadows []model.Shadow) []model.Shadow {
	if len(shadows) <= 1 {
		return shadows
	}
	kept := dropContained(shadows)
	kept = dropEdgeBands(kept)
	if len(kept) <= 1 {
		return kept
	}
	return dropCoverageRedundant(kept)
}

// dropContained removes every shadow whose four corners fit inside the
// bounding box of another surviving shadow. The scan is sequential, so of
// two identical shadows the first is dropped and the second kept.
func dropContained(shadows []model.Shadow) []model.Shadow {
	boxes := make([]model.ShadowBox, len(shadows))
	for i, s := range shadows {
		boxes[i] = s.Box()
	}
	alive := make([]bool, len(shadows))
	for i := range alive {
		alive[i] = true
	}
	for i := range shadows {
		for j := range shadows {
			if i == j || !alive[j] {
				continue
			}
			if boxes[j].ContainsBox(boxes[i], containmentMargin) {
				alive[i] = false
				break
			}
		}
	}
	kept := make([]model.Shadow, 0, len(shadows))
	for i, s := range shadows {
		if alive[i] {
			kept = append(kept, s)
		}
	}
	return kept
}

// dropEdgeBands removes shadows lying entirely within the irrelevant
// azimuth bands, regardless of elevation.
func dropEdgeBands(shadows []model.Shadow) []model.Shadow {
	kept := make([]model.Shadow, 0, len(shadows))
	for _, s := range shadows {
		b := s.Box()
		if b.MaxAzimut <= -irrelevantAzimuthLimit || b.MinAzimut >= irrelevantAzimuthLimit {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// dropCoverageRedundant removes shadows whose absence leaves the rasterized
// coverage of the sky dome unchanged. Full passes repeat until a fixed
// point: removing one redundant shadow can make another removable, and a
// single linear pass would miss those.
func dropCoverageRedundant(shadows []model.Shadow) []model.Shadow {
	reference := coverage(shadows)
	kept := shadows
	for {
		removed := false
		for i := 0; i < len(kept); i++ {
			rest := make([]model.Shadow, 0, len(kept)-1)
			rest = append(rest, kept[:i]...)
			rest = append(rest, kept[i+1:]...)
			if coverageEqual(coverage(rest), reference) {
				kept = rest
				removed = true
				i--
			}
		}
		if !removed {
			return kept
		}
	}
}

// coverage rasterizes the shadows onto the integer-degree grid. A cell is
// covered when its representative direction falls inside at least one
// shadow's bounding box, bounds inclusive.
func coverage(shadows []model.Shadow) []bool {
	grid := make([]bool, gridAzimuthCells*gridElevationCells)
	for _, s := range shadows {
		b := s.Box()
		for az := 0; az < gridAzimuthCells; az++ {
			azDeg := float64(az - gridAzimuthCells/2)
			if azDeg < b.MinAzimut || azDeg > b.MaxAzimut {
				continue
			}
			for el := 0; el < gridElevationCells; el++ {
				if float64(el) < b.MinElevation || float64(el) > b.MaxElevation {
					continue
				}
				grid[az*gridElevationCells+el] = true
			}
		}
	}
	return grid
}

func coverageEqual(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
