package telea

import "errors"

// Validation errors returned by Inpaint before any pixel is touched.
var (
	// ErrDimensionMismatch reports a mask whose (H, W) differs from the image.
	ErrDimensionMismatch = errors.New("telea: mask dimensions do not match image")
	// ErrInvalidRadius reports a neighborhood radius below 1.
	ErrInvalidRadius = errors.New("telea: radius must be at least 1")
	// ErrEmptyImage reports an image with a zero dimension.
	ErrEmptyImage = errors.New("telea: image has no pixels")
)

// Inpaint reconstructs every masked pixel of image in place. A pixel is
// masked iff its mask value exceeds 0.5; unmasked pixels are never written,
// so their values survive bit-exactly. radius bounds the disk of known
// neighbors each filled pixel draws from.
//
// The front marches from the mask boundary inward, finalizing pixels in
// nondecreasing arrival-time order with ties broken by (y, x), so repeated
// runs on identical inputs produce identical outputs. Validation happens
// up front; once marching starts the call cannot fail.
func Inpaint[F Float](image *Image[F], mask *Grid[F], radius int) error {
	h, w, c := image.Shape()
	if h == 0 || w == 0 || c == 0 {
		return ErrEmptyImage
	}
	if mh, mw := mask.Shape(); mh != h || mw != w {
		return ErrDimensionMismatch
	}
	if radius < 1 {
		return ErrInvalidRadius
	}

	f, hp := newField(mask)
	march(image, f, hp, radius, nil)
	return nil
}

// march runs the fast marching loop: pop the closest band pixel, fill it
// if it was masked, finalize it, then relax its 4-connected neighbors with
// the eikonal update, pushing every improvement. Stale heap entries are
// recognized by their flag no longer being band and skipped. onPop, when
// non-nil, observes each finalized pixel in pop order.
func march[F Float](image *Image[F], f *field, hp *bandHeap, radius int, onPop func(y, x int, t float32)) {
	_, _, c := image.Shape()
	acc := make([]float32, c)

	for hp.Len() > 0 {
		e := hp.pop()
		i := e.y*f.w + e.x
		if f.flags[i] != band {
			continue
		}
		if onPop != nil {
			onPop(e.y, e.x, f.t[i])
		}
		// Fill before flipping the flag: the pixel's residual value must
		// not feed the image-gradient estimates of its own neighborhood.
		if f.masked[i] {
			inpaintPixel(image, f, e.y, e.x, radius, acc)
		}
		f.flags[i] = known

		for _, d := range neighborOffsets {
			qy, qx := e.y+d[0], e.x+d[1]
			if qy < 0 || qy >= f.h || qx < 0 || qx >= f.w {
				continue
			}
			qi := qy*f.w + qx
			if f.flags[qi] == known {
				continue
			}
			if tNew := f.solve(qy, qx); tNew < f.t[qi] {
				f.t[qi] = tNew
				if f.flags[qi] == unknown {
					f.flags[qi] = band
				}
				hp.push(bandEntry{t: tNew, y: qy, x: qx})
			}
		}
	}
}
