package images

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"

	"github.com/gillesvink/inpaint/telea"
)

// MaskFromRects builds an (h, w) mask grid marking every pixel covered by
// one of the rectangles. Rectangles are clipped to the grid, so callers can
// pass regions that hang over the edge.
func MaskFromRects(h, w int, rects ...image.Rectangle) *telea.Grid[float32] {
	mask := telea.NewGrid[float32](h, w)
	bounds := image.Rect(0, 0, w, h)
	for _, r := range rects {
		r = r.Intersect(bounds)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				mask.Set(y, x, 1)
			}
		}
	}
	return mask
}

// ResizeMask scales mask to (h, w) with nearest-neighbor sampling, which
// keeps a binary mask binary. A mask already at the target shape is
// returned as is.
func ResizeMask(mask *telea.Grid[float32], h, w int) *telea.Grid[float32] {
	mh, mw := mask.Shape()
	if mh == h && mw == w {
		return mask
	}

	gray := image.NewGray(image.Rect(0, 0, mw, mh))
	for y := 0; y < mh; y++ {
		for x := 0; x < mw; x++ {
			if mask.At(y, x) > 0.5 {
				gray.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}

	scaled := resize.Resize(uint(w), uint(h), gray, resize.NearestNeighbor)
	out := telea.NewGrid[float32](h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, _, _, _ := scaled.At(x, y).RGBA(); r > 0x7fff {
				out.Set(y, x, 1)
			}
		}
	}
	return out
}
