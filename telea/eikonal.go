package telea

import "github.com/chewxy/math32"

// solve computes a candidate arrival time at (y, x) from the upwind
// discretization of |grad T| = 1 with unit speed. Each axis contributes the
// smaller known-neighbor time; with both axes available the quadratic
// update is tried first, accepting a root only when it is causal (not
// smaller than either contributing time). Axes without a known neighbor
// fall back to a one-dimensional step, and a pixel with no known neighbor
// at all is currently unreachable.
func (f *field) solve(y, x int) float32 {
	th := math32.Min(f.knownT(y, x-1), f.knownT(y, x+1))
	tv := math32.Min(f.knownT(y-1, x), f.knownT(y+1, x))
	hasH := th < f.inf
	hasV := tv < f.inf

	switch {
	case hasH && hasV:
		r := 2 - (th-tv)*(th-tv)
		if r > 0 {
			root := math32.Sqrt(r)
			s := (th + tv - root) / 2
			if s >= th && s >= tv {
				return s
			}
			s += root
			if s >= th && s >= tv {
				return s
			}
		}
		// The fronts are too far apart for a joint solution; march along
		// the nearer axis alone.
		return math32.Min(th, tv) + 1
	case hasH:
		return th + 1
	case hasV:
		return tv + 1
	}
	return f.inf
}
