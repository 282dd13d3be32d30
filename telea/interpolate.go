package telea

import "github.com/chewxy/math32"

const (
	// gradFloor is the minimum arrival-time gradient magnitude considered
	// directional; below it the directional factor collapses to 1.
	gradFloor = 1e-6
	// dirEpsilon replaces an exactly-zero directional factor so neighbors
	// orthogonal to the front still contribute a sliver of weight.
	dirEpsilon = 1e-6
)

// gradT estimates the arrival-time gradient at (y, x) with central
// differences over the 4-connected neighborhood, degrading to one-sided
// differences next to unreached pixels. Out-of-bounds samples read as the
// center value. The returned vector is oriented (-dT/dy, dT/dx) so that its
// dot product with a neighbor offset peaks along the level-set normal.
func (f *field) gradT(y, x int) (gy, gx float32) {
	dy := f.diffT(y, x, y-1, x, y+1, x)
	dx := f.diffT(y, x, y, x-1, y, x+1)
	return -dy, dx
}

// diffT computes one axis of the arrival-time difference at (y, x) given
// the previous and next sample coordinates along that axis.
func (f *field) diffT(y, x, py, px, ny, nx int) float32 {
	center := f.t[y*f.w+x]

	prevVal, prevUnknown := center, false
	if py >= 0 && py < f.h && px >= 0 && px < f.w {
		i := py*f.w + px
		if f.flags[i] == unknown {
			prevUnknown = true
		} else {
			prevVal = f.t[i]
		}
	}
	nextVal, nextUnknown := center, false
	if ny >= 0 && ny < f.h && nx >= 0 && nx < f.w {
		i := ny*f.w + nx
		if f.flags[i] == unknown {
			nextUnknown = true
		} else {
			nextVal = f.t[i]
		}
	}

	switch {
	case !prevUnknown && !nextUnknown:
		return (nextVal - prevVal) / 2
	case !prevUnknown:
		return center - prevVal
	case !nextUnknown:
		return nextVal - center
	}
	return 0
}

// gradImage estimates one channel of the image gradient at a known pixel
// (y, x) from central differences restricted to known neighbors. With a
// known neighbor on only one side the difference is one-sided; with none,
// the gradient is zero.
func gradImage[F Float](img *Image[F], f *field, y, x, ch int) (gy, gx float32) {
	center := float32(img.At(y, x, ch))

	axis := func(py, px, ny, nx int) float32 {
		prevOK := py >= 0 && py < f.h && px >= 0 && px < f.w && f.flags[py*f.w+px] == known
		nextOK := ny >= 0 && ny < f.h && nx >= 0 && nx < f.w && f.flags[ny*f.w+nx] == known
		switch {
		case prevOK && nextOK:
			return (float32(img.At(ny, nx, ch)) - float32(img.At(py, px, ch))) / 2
		case nextOK:
			return float32(img.At(ny, nx, ch)) - center
		case prevOK:
			return center - float32(img.At(py, px, ch))
		}
		return 0
	}
	return axis(y-1, x, y+1, x), axis(y, x-1, y, x+1)
}

// inpaintPixel fills (y, x) from the known pixels inside a disk of the given
// radius. Each neighbor is weighted by the product of a directional factor
// (alignment of the neighbor offset with the arrival-time gradient), an
// inverse-square geometric distance, and a level-set proximity factor, and
// contributes its value extrapolated along its own image gradient. With no
// known neighbor in range the pixel is left untouched.
func inpaintPixel[F Float](img *Image[F], f *field, y, x, radius int, acc []float32) {
	gy, gx := f.gradT(y, x)
	gmag := math32.Hypot(gy, gx)
	tp := f.t[y*f.w+x]
	r2 := float32(radius * radius)

	_, _, c := img.Shape()
	for ch := 0; ch < c; ch++ {
		acc[ch] = 0
	}
	var wsum float32

	for dy := -radius; dy <= radius; dy++ {
		qy := y + dy
		if qy < 0 || qy >= f.h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			qx := x + dx
			if qx < 0 || qx >= f.w {
				continue
			}
			qi := qy*f.w + qx
			if f.flags[qi] != known {
				continue
			}
			ry := float32(-dy)
			rx := float32(-dx)
			d2 := ry*ry + rx*rx
			if d2 == 0 || d2 > r2 {
				continue
			}

			wDir := float32(1)
			if gmag >= gradFloor {
				wDir = math32.Abs((ry*gy + rx*gx) / (math32.Sqrt(d2) * gmag))
				if wDir == 0 {
					wDir = dirEpsilon
				}
			}
			wDst := 1 / d2
			wLev := 1 / (1 + math32.Abs(f.t[qi]-tp))
			w := wDir * wDst * wLev

			for ch := 0; ch < c; ch++ {
				igy, igx := gradImage(img, f, qy, qx, ch)
				acc[ch] += w * (float32(img.At(qy, qx, ch)) + igy*ry + igx*rx)
			}
			wsum += w
		}
	}

	if wsum > 0 {
		for ch := 0; ch < c; ch++ {
			img.Set(y, x, ch, F(acc[ch]/wsum))
		}
	}
}
