package telea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeImage(h, w, c int, fn func(y, x, ch int) float32) *Image[float32] {
	im := NewImage[float32](h, w, c)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for ch := 0; ch < c; ch++ {
				im.Set(y, x, ch, fn(y, x, ch))
			}
		}
	}
	return im
}

func cloneData[F Float](im *Image[F]) []F {
	out := make([]F, len(im.Data()))
	copy(out, im.Data())
	return out
}

func TestInpaintValidation(t *testing.T) {
	img := NewImage[float32](5, 5, 3)
	mask := NewGrid[float32](5, 5)

	assert.ErrorIs(t, Inpaint(NewImage[float32](0, 5, 3), NewGrid[float32](0, 5), 1), ErrEmptyImage)
	assert.ErrorIs(t, Inpaint(NewImage[float32](5, 0, 3), NewGrid[float32](5, 0), 1), ErrEmptyImage)
	assert.ErrorIs(t, Inpaint(NewImage[float32](5, 5, 0), mask, 1), ErrEmptyImage)
	assert.ErrorIs(t, Inpaint(img, NewGrid[float32](5, 4), 1), ErrDimensionMismatch)
	assert.ErrorIs(t, Inpaint(img, NewGrid[float32](4, 5), 1), ErrDimensionMismatch)
	assert.ErrorIs(t, Inpaint(img, mask, 0), ErrInvalidRadius)
	assert.ErrorIs(t, Inpaint(img, mask, -3), ErrInvalidRadius)
}

func TestInpaintEmptyMaskLeavesImageUntouched(t *testing.T) {
	img := makeImage(5, 5, 3, func(y, x, ch int) float32 {
		return float32(y*31+x*7+ch*3) * 0.013
	})
	before := cloneData(img)

	require.NoError(t, Inpaint(img, NewGrid[float32](5, 5), 1))
	assert.Equal(t, before, img.Data())
}

func TestInpaintFullMaskLeavesImageUntouched(t *testing.T) {
	img := makeImage(4, 6, 2, func(y, x, ch int) float32 {
		return float32(y+x+ch) * 0.1
	})
	before := cloneData(img)
	mask := NewGrid[float32](4, 6)
	for i := range mask.Data() {
		mask.Data()[i] = 1
	}

	require.NoError(t, Inpaint(img, mask, 2))
	assert.Equal(t, before, img.Data(), "with no known pixels there is nothing to fill from")
}

func TestInpaintSinglePixelHole(t *testing.T) {
	img := makeImage(5, 5, 1, func(int, int, int) float32 { return 1 })
	mask := maskWithBlock(5, 5, 2, 2, 3, 3)

	require.NoError(t, Inpaint(img, mask, 2))
	assert.InDelta(t, 1.0, float64(img.At(2, 2, 0)), 1e-6,
		"a hole in a constant image must be filled with that constant")
}

func TestInpaintPreservesKnownPixelsBitExact(t *testing.T) {
	img := makeImage(9, 9, 3, func(y, x, ch int) float32 {
		return float32(y*131+x*17+ch*5) * 0.00371
	})
	before := cloneData(img)
	mask := maskWithBlock(9, 9, 3, 3, 6, 6)

	require.NoError(t, Inpaint(img, mask, 3))
	h, w, c := img.Shape()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.At(y, x) > 0.5 {
				continue
			}
			for ch := 0; ch < c; ch++ {
				if img.At(y, x, ch) != before[(y*w+x)*c+ch] {
					t.Fatalf("known pixel (%d, %d, %d) changed", y, x, ch)
				}
			}
		}
	}
}

func TestInpaintFillsEveryMaskedPixel(t *testing.T) {
	img := makeImage(9, 9, 1, func(y, x, ch int) float32 { return 0.5 })
	mask := maskWithBlock(9, 9, 2, 2, 7, 7)
	// Poison the hole with the sentinel so an unfilled pixel is obvious.
	for y := 2; y < 7; y++ {
		for x := 2; x < 7; x++ {
			img.Set(y, x, 0, maxDistance)
		}
	}

	require.NoError(t, Inpaint(img, mask, 3))
	for y := 2; y < 7; y++ {
		for x := 2; x < 7; x++ {
			assert.Less(t, img.At(y, x, 0), float32(maxDistance),
				"pixel (%d, %d) was never assigned", y, x)
		}
	}
}

func TestInpaintLinearGradient(t *testing.T) {
	img := makeImage(11, 11, 1, func(y, x, ch int) float32 { return float32(x) })
	mask := maskWithBlock(11, 11, 4, 4, 7, 7)

	require.NoError(t, Inpaint(img, mask, 3))
	for y := 4; y < 7; y++ {
		for x := 4; x < 7; x++ {
			assert.InDelta(t, float64(x), float64(img.At(y, x, 0)), 0.5,
				"recovered pixel (%d, %d) strays from the gradient", y, x)
		}
	}
}

func TestInpaintRectangularImage(t *testing.T) {
	// 7x13 checkerboard with a 2x2 hole away from the border. Recovered
	// values must sit near the local average of the surrounding pattern.
	img := makeImage(7, 13, 4, func(y, x, ch int) float32 {
		return float32((y + x + ch) % 2)
	})
	mask := maskWithBlock(7, 13, 3, 6, 5, 8)

	require.NoError(t, Inpaint(img, mask, 2))
	for y := 3; y < 5; y++ {
		for x := 6; x < 8; x++ {
			for ch := 0; ch < 4; ch++ {
				mean := windowMean(t, img, mask, y, x, ch, 2)
				assert.InDelta(t, mean, float64(img.At(y, x, ch)), 0.75,
					"pixel (%d, %d, %d) far from surrounding average", y, x, ch)
			}
		}
	}
}

// windowMean averages channel ch of the unmasked pixels within the given
// radius around (y, x).
func windowMean(t *testing.T, img *Image[float32], mask *Grid[float32], y, x, ch, radius int) float64 {
	t.Helper()
	var sum float64
	var n int
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			qy, qx := y+dy, x+dx
			if !img.InBounds(qy, qx) || mask.At(qy, qx) > 0.5 {
				continue
			}
			sum += float64(img.At(qy, qx, ch))
			n++
		}
	}
	require.NotZero(t, n)
	return sum / float64(n)
}

func TestInpaintDegenerateStrips(t *testing.T) {
	// 1xW strip with a hole in the middle.
	row := makeImage(1, 7, 1, func(y, x, ch int) float32 { return float32(x) })
	rowMask := maskWithBlock(1, 7, 0, 3, 1, 4)
	require.NoError(t, Inpaint(row, rowMask, 1))
	assert.InDelta(t, 3.0, float64(row.At(0, 3, 0)), 0.5)

	// Hx1 strip.
	col := makeImage(7, 1, 1, func(y, x, ch int) float32 { return float32(y) })
	colMask := maskWithBlock(7, 1, 3, 0, 4, 1)
	require.NoError(t, Inpaint(col, colMask, 1))
	assert.InDelta(t, 3.0, float64(col.At(3, 0, 0)), 0.5)
}

func TestInpaintDeterminism(t *testing.T) {
	build := func() (*Image[float32], *Grid[float32]) {
		img := makeImage(13, 9, 3, func(y, x, ch int) float32 {
			return float32((y*29+x*13+ch*7)%17) / 16
		})
		return img, maskWithBlock(13, 9, 4, 2, 9, 6)
	}

	a, am := build()
	b, bm := build()
	require.NoError(t, Inpaint(a, am, 3))
	require.NoError(t, Inpaint(b, bm, 3))
	assert.Equal(t, a.Data(), b.Data(), "identical inputs must produce identical outputs")
}

func TestInpaintChannelIndependence(t *testing.T) {
	gen := func(y, x, ch int) float32 {
		return float32((y*7+x*3)%5)*0.2 + float32(ch)*0.01
	}
	img := makeImage(8, 8, 3, gen)
	// Same content with channels rotated 0->1->2->0.
	rotated := makeImage(8, 8, 3, func(y, x, ch int) float32 {
		return gen(y, x, (ch+2)%3)
	})
	mask := maskWithBlock(8, 8, 3, 3, 6, 6)

	require.NoError(t, Inpaint(img, mask, 2))
	require.NoError(t, Inpaint(rotated, mask, 2))
	h, w, c := img.Shape()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for ch := 0; ch < c; ch++ {
				assert.Equal(t, img.At(y, x, (ch+2)%3), rotated.At(y, x, ch),
					"channels must be interpolated independently")
			}
		}
	}
}

func TestInpaintMonotoneArrivalOrder(t *testing.T) {
	img := NewImage[float32](9, 9, 1)
	mask := maskWithBlock(9, 9, 2, 3, 7, 8)
	f, hp := newField(mask)

	last := float32(-1)
	march(img, f, hp, 2, func(y, x int, tv float32) {
		assert.GreaterOrEqual(t, tv, last,
			"pixel (%d, %d) finalized out of order", y, x)
		last = tv
	})
}

func TestInpaintRadiusSensitivity(t *testing.T) {
	build := func() (*Image[float32], *Grid[float32]) {
		img := makeImage(15, 15, 1, func(y, x, ch int) float32 {
			return float32((y + x) % 2)
		})
		return img, maskWithBlock(15, 15, 5, 5, 10, 10)
	}

	narrow, nm := build()
	wide, wm := build()
	require.NoError(t, Inpaint(narrow, nm, 1))
	require.NoError(t, Inpaint(wide, wm, 3))

	vNarrow := recoveredVariance(narrow, nm)
	vWide := recoveredVariance(wide, wm)
	assert.LessOrEqual(t, vWide, vNarrow+1e-6,
		"a wider neighborhood must not roughen the fill (r=3 var %v vs r=1 var %v)", vWide, vNarrow)
}

func recoveredVariance(img *Image[float32], mask *Grid[float32]) float64 {
	var sum, sumSq float64
	var n int
	h, w, _ := img.Shape()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.At(y, x) <= 0.5 {
				continue
			}
			v := float64(img.At(y, x, 0))
			sum += v
			sumSq += v * v
			n++
		}
	}
	mean := sum / float64(n)
	return sumSq/float64(n) - mean*mean
}

func TestInpaintFloat64(t *testing.T) {
	img := NewImage[float64](5, 5, 2)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			img.Set(y, x, 0, 1)
			img.Set(y, x, 1, 0.25)
		}
	}
	mask := NewGrid[float64](5, 5)
	mask.Set(2, 2, 1)

	require.NoError(t, Inpaint(img, mask, 2))
	assert.InDelta(t, 1.0, img.At(2, 2, 0), 1e-6)
	assert.InDelta(t, 0.25, img.At(2, 2, 1), 1e-6)
}
