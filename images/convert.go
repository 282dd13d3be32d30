// Package images adapts Go image containers and tensors to the inpainting
// kernel's dense array views, and handles encoding and decoding of the
// supported file formats.
package images

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/gillesvink/inpaint/telea"
)

// FromImage converts src into a dense (H, W, 4) RGBA view with channel
// values scaled to [0, 1].
func FromImage(src image.Image) *telea.Image[float32] {
	b := src.Bounds()
	h, w := b.Dy(), b.Dx()
	out := telea.NewImage[float32](h, w, 4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.Set(y, x, 0, float32(r)/0xffff)
			out.Set(y, x, 1, float32(g)/0xffff)
			out.Set(y, x, 2, float32(bl)/0xffff)
			out.Set(y, x, 3, float32(a)/0xffff)
		}
	}
	return out
}

// ToImage converts a dense view back into an NRGBA image, clamping each
// channel to [0, 1]. One-channel views render as gray, three-channel views
// as opaque RGB, and the first four channels are used otherwise.
func ToImage(src *telea.Image[float32]) *image.NRGBA {
	h, w, c := src.Shape()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var px color.NRGBA
			switch {
			case c == 1:
				v := quantize(src.At(y, x, 0))
				px = color.NRGBA{R: v, G: v, B: v, A: 0xff}
			case c < 4:
				px = color.NRGBA{
					R: quantize(src.At(y, x, 0)),
					G: quantize(src.At(y, x, 1)),
					B: quantize(src.At(y, x, 2)),
					A: 0xff,
				}
			default:
				px = color.NRGBA{
					R: quantize(src.At(y, x, 0)),
					G: quantize(src.At(y, x, 1)),
					B: quantize(src.At(y, x, 2)),
					A: quantize(src.At(y, x, 3)),
				}
			}
			out.SetNRGBA(x, y, px)
		}
	}
	return out
}

func quantize(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

// MaskFromImage reduces src to a scalar mask grid holding its normalized
// luminance. Pixels brighter than half intensity mark the region to fill.
func MaskFromImage(src image.Image) *telea.Grid[float32] {
	b := src.Bounds()
	h, w := b.Dy(), b.Dx()
	out := telea.NewGrid[float32](h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.Gray16Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			out.Set(y, x, float32(g.Y)/0xffff)
		}
	}
	return out
}

// InpaintImage decodes nothing and allocates everything: it converts src and
// mask into dense views, runs the kernel, and returns the filled result as a
// new NRGBA image. src itself is not modified. The mask must match src's
// dimensions; otherwise the kernel's ErrDimensionMismatch is returned,
// wrapped.
func InpaintImage(src image.Image, mask image.Image, radius int) (*image.NRGBA, error) {
	view := FromImage(src)
	grid := MaskFromImage(mask)
	if err := telea.Inpaint(view, grid, radius); err != nil {
		return nil, errors.Wrap(err, "inpaint")
	}
	return ToImage(view), nil
}
