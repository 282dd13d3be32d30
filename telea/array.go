// Package telea implements image inpainting with the fast marching method,
// following Telea's "An Image Inpainting Technique Based on the Fast Marching
// Method" (2004). The algorithm marches inward from the boundary of the masked
// region and fills each pixel from a weighted combination of its already-known
// neighbors within a configurable radius.
package telea

import "fmt"

// Float constrains the element types the kernel accepts. All internal
// arithmetic (distances, weights, accumulators) runs in float32 regardless
// of the element type: samples of a float64 image are rounded to float32 on
// read, so its filled pixels carry float32 precision. Unmasked pixels are
// never written and keep their full precision.
type Float interface {
	~float32 | ~float64
}

// Image is a dense row-major (H, W, C) view over a backing slice. Channel
// semantics are irrelevant to the kernel: every channel is interpolated
// independently with identical weights.
type Image[F Float] struct {
	h, w, c int
	data    []F
}

// NewImage allocates a zero-filled image view with the given shape.
func NewImage[F Float](h, w, c int) *Image[F] {
	return &Image[F]{h: h, w: w, c: c, data: make([]F, h*w*c)}
}

// ImageFromSlice wraps a caller-owned backing slice without copying. The
// slice must hold exactly h*w*c elements laid out row-major.
func ImageFromSlice[F Float](h, w, c int, data []F) (*Image[F], error) {
	if len(data) != h*w*c {
		return nil, fmt.Errorf("telea: backing slice holds %d elements, shape (%d, %d, %d) needs %d",
			len(data), h, w, c, h*w*c)
	}
	return &Image[F]{h: h, w: w, c: c, data: data}, nil
}

// Shape returns the (H, W, C) dimensions.
func (im *Image[F]) Shape() (h, w, c int) { return im.h, im.w, im.c }

// InBounds reports whether (y, x) addresses a pixel inside the image.
func (im *Image[F]) InBounds(y, x int) bool {
	return y >= 0 && y < im.h && x >= 0 && x < im.w
}

// At returns the value of channel ch at (y, x).
func (im *Image[F]) At(y, x, ch int) F {
	return im.data[im.offset(y, x)+ch]
}

// Set stores v into channel ch at (y, x).
func (im *Image[F]) Set(y, x, ch int, v F) {
	im.data[im.offset(y, x)+ch] = v
}

// Pixel copies the channel vector at (y, x) into dst, which must hold at
// least C elements.
func (im *Image[F]) Pixel(y, x int, dst []F) {
	off := im.offset(y, x)
	copy(dst, im.data[off:off+im.c])
}

// Data exposes the backing slice. Mutating it mutates the image.
func (im *Image[F]) Data() []F { return im.data }

func (im *Image[F]) offset(y, x int) int {
	if !im.InBounds(y, x) {
		panic(fmt.Sprintf("telea: pixel (%d, %d) out of range for %dx%d image", y, x, im.h, im.w))
	}
	return (y*im.w + x) * im.c
}

// Grid is a dense row-major (H, W) scalar field, used for masks and for the
// arrival-time field.
type Grid[F Float] struct {
	h, w int
	data []F
}

// NewGrid allocates a zero-filled grid with the given shape.
func NewGrid[F Float](h, w int) *Grid[F] {
	return &Grid[F]{h: h, w: w, data: make([]F, h*w)}
}

// GridFromSlice wraps a caller-owned backing slice without copying. The
// slice must hold exactly h*w elements laid out row-major.
func GridFromSlice[F Float](h, w int, data []F) (*Grid[F], error) {
	if len(data) != h*w {
		return nil, fmt.Errorf("telea: backing slice holds %d elements, shape (%d, %d) needs %d",
			len(data), h, w, h*w)
	}
	return &Grid[F]{h: h, w: w, data: data}, nil
}

// Shape returns the (H, W) dimensions.
func (g *Grid[F]) Shape() (h, w int) { return g.h, g.w }

// InBounds reports whether (y, x) addresses a cell inside the grid.
func (g *Grid[F]) InBounds(y, x int) bool {
	return y >= 0 && y < g.h && x >= 0 && x < g.w
}

// At returns the value at (y, x).
func (g *Grid[F]) At(y, x int) F {
	return g.data[g.offset(y, x)]
}

// Set stores v at (y, x).
func (g *Grid[F]) Set(y, x int, v F) {
	g.data[g.offset(y, x)] = v
}

// Data exposes the backing slice. Mutating it mutates the grid.
func (g *Grid[F]) Data() []F { return g.data }

func (g *Grid[F]) offset(y, x int) int {
	if !g.InBounds(y, x) {
		panic(fmt.Sprintf("telea: cell (%d, %d) out of range for %dx%d grid", y, x, g.h, g.w))
	}
	return y*g.w + x
}
