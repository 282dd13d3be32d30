package images

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
)

// ImageFormat represents supported image formats
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatWebP ImageFormat = "webp"
	FormatPNG  ImageFormat = "png"
)

// FormatFromPath maps a file extension to its format.
func FormatFromPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".webp":
		return FormatWebP, nil
	}
	return "", errors.Errorf("unsupported image extension %q", filepath.Ext(path))
}

// Decode reads an image of the given format from r.
func Decode(r io.Reader, format ImageFormat) (image.Image, error) {
	switch format {
	case FormatPNG:
		return png.Decode(r)
	case FormatJPEG:
		return jpeg.Decode(r)
	case FormatWebP:
		return webp.Decode(r)
	}
	return nil, errors.Errorf("unsupported image format %q", format)
}

// Encode writes img to w in the given format. JPEG uses the default
// quality; WebP is written lossless so round trips stay exact.
func Encode(w io.Writer, img image.Image, format ImageFormat) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, nil)
	case FormatWebP:
		return webp.Encode(w, img, &webp.Options{Lossless: true})
	}
	return errors.Errorf("unsupported image format %q", format)
}

// DecodeFile opens path and decodes it according to its extension.
func DecodeFile(path string) (image.Image, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	img, err := Decode(f, format)
	return img, errors.Wrapf(err, "decode %s", path)
}

// EncodeFile writes img to path in the format implied by its extension.
func EncodeFile(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	if err := Encode(f, img, format); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return f.Close()
}
