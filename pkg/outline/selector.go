package outline

import "github.com/matzehuels/meshslice/pkg/geom"

// Selector picks which point set to derive the offset outline from.
// It returns the index of the chosen set and false if nothing qualifies.
//
// The selection is an interface so the default heuristic can be swapped
// for a stricter area- or winding-based one without touching the offset
// math.
type Selector interface {
	Select(sets [][]geom.Vec3) (int, bool)
}

// MostPoints selects the set with the most points, a heuristic for "the
// outer boundary". It performs no geometric area or winding check; an
// inner hole with a denser tessellation than the outer wall will win.
type MostPoints struct{}

// Select implements Selector.
func (MostPoints) Select(sets [][]geom.Vec3) (int, bool) {
	best, bestLen := -1, 0
	for i, set := range sets {
		if len(set) > bestLen {
			best, bestLen = i, len(set)
		}
	}
	return best, best >= 0
}
