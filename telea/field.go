package telea

import "container/heap"

// Pixel states for the marching front. The zero value is known so a fresh
// flag slice starts fully known and only masked/boundary cells are rewritten.
type state uint8

const (
	known state = iota
	band
	unknown
)

const (
	// maskThreshold separates masked from known pixels. The comparison is
	// strict, so a mask value of exactly 0.5 counts as known.
	maskThreshold = 0.5
	// maxDistance is the minimum arrival-time sentinel. Images larger than
	// 1e6 pixels raise the sentinel to H*W so it stays unreachable.
	maxDistance = 1.0e6
)

// 4-connected neighborhood in (dy, dx) order.
var neighborOffsets = [4][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

// field holds the per-pixel marching state: flags, arrival times, and the
// original mask predicate. It lives for exactly one Inpaint call.
type field struct {
	h, w   int
	flags  []state
	t      []float32
	masked []bool
	inf    float32
}

// newField classifies every pixel from the mask and seeds the narrow band.
// Masked pixels start unknown with sentinel arrival time; unmasked pixels
// with at least one 4-connected masked neighbor form the initial front and
// are pushed onto the heap with key 0; everything else stays known.
func newField[F Float](mask *Grid[F]) (*field, *bandHeap) {
	h, w := mask.Shape()
	f := &field{
		h:      h,
		w:      w,
		flags:  make([]state, h*w),
		t:      make([]float32, h*w),
		masked: make([]bool, h*w),
		inf:    maxDistance,
	}
	if hw := float32(h * w); hw > f.inf {
		f.inf = hw
	}
	for i, v := range mask.Data() {
		f.masked[i] = float64(v) > maskThreshold
	}

	hp := &bandHeap{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if f.masked[i] {
				f.flags[i] = unknown
				f.t[i] = f.inf
				continue
			}
			for _, d := range neighborOffsets {
				ny, nx := y+d[0], x+d[1]
				if ny < 0 || ny >= h || nx < 0 || nx >= w {
					continue
				}
				if f.masked[ny*w+nx] {
					f.flags[i] = band
					*hp = append(*hp, bandEntry{t: 0, y: y, x: x})
					break
				}
			}
		}
	}
	heap.Init(hp)
	return f, hp
}

// knownT returns the arrival time at (y, x) when that pixel is known, and
// the sentinel otherwise. Out-of-bounds coordinates read as the sentinel,
// which lets the solver treat image edges and unreached pixels uniformly.
func (f *field) knownT(y, x int) float32 {
	if y < 0 || y >= f.h || x < 0 || x >= f.w {
		return f.inf
	}
	i := y*f.w + x
	if f.flags[i] != known {
		return f.inf
	}
	return f.t[i]
}
