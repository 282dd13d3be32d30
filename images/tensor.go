package images

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/gillesvink/inpaint/telea"
)

// InpaintTensor fills the masked pixels of a row-major (H, W, C) dense
// tensor in place. The mask must be a (H, W) tensor of the same dtype;
// float32 and float64 are supported. Both tensors' backing slices are
// wrapped without copying, so the image tensor holds the result on return.
func InpaintTensor(img, mask *tensor.Dense, radius int) error {
	ishape := img.Shape()
	if len(ishape) != 3 {
		return errors.Errorf("image tensor must have shape (H, W, C), got %v", ishape)
	}
	mshape := mask.Shape()
	if len(mshape) != 2 {
		return errors.Errorf("mask tensor must have shape (H, W), got %v", mshape)
	}
	if img.Dtype() != mask.Dtype() {
		return errors.Errorf("image dtype %v does not match mask dtype %v", img.Dtype(), mask.Dtype())
	}

	switch img.Dtype() {
	case tensor.Float32:
		return inpaintBacking(ishape, mshape, img.Data().([]float32), mask.Data().([]float32), radius)
	case tensor.Float64:
		return inpaintBacking(ishape, mshape, img.Data().([]float64), mask.Data().([]float64), radius)
	}
	return errors.Errorf("unsupported tensor dtype %v", img.Dtype())
}

func inpaintBacking[F telea.Float](ishape, mshape tensor.Shape, img, mask []F, radius int) error {
	view, err := telea.ImageFromSlice(ishape[0], ishape[1], ishape[2], img)
	if err != nil {
		return errors.Wrap(err, "image tensor")
	}
	grid, err := telea.GridFromSlice(mshape[0], mshape[1], mask)
	if err != nil {
		return errors.Wrap(err, "mask tensor")
	}
	return errors.Wrap(telea.Inpaint(view, grid, radius), "inpaint")
}
