// Command inpaint removes masked regions from images using fast marching
// inpainting. The region to fill comes either from a mask image (white =
// fill) or from one or more rectangles given on the command line.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/gillesvink/inpaint/images"
	"github.com/gillesvink/inpaint/telea"
	"github.com/gillesvink/inpaint/util"
)

// rectList collects repeated -rect flags as x0,y0,x1,y1 rectangles.
type rectList []image.Rectangle

func (r *rectList) String() string {
	parts := make([]string, len(*r))
	for i, rect := range *r {
		parts[i] = fmt.Sprintf("%d,%d,%d,%d", rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	}
	return strings.Join(parts, ";")
}

func (r *rectList) Set(value string) error {
	var x0, y0, x1, y1 int
	if _, err := fmt.Sscanf(value, "%d,%d,%d,%d", &x0, &y0, &x1, &y1); err != nil {
		return errors.Errorf("rectangle %q must be x0,y0,x1,y1", value)
	}
	*r = append(*r, image.Rect(x0, y0, x1, y1))
	return nil
}

func main() {
	var (
		inputPath  string
		maskPath   string
		outputPath string
		inDir      string
		outDir     string
		radius     int
		rects      rectList
	)
	flag.StringVar(&inputPath, "input", "", "Path to the image to inpaint")
	flag.StringVar(&maskPath, "mask", "", "Path to the mask image (white pixels are filled)")
	flag.StringVar(&outputPath, "output", "", "Path to write the result to")
	flag.StringVar(&inDir, "indir", "", "Directory of images to inpaint with a single mask")
	flag.StringVar(&outDir, "outdir", "", "Directory to write batch results to")
	flag.IntVar(&radius, "radius", 5, "Neighborhood radius in pixels")
	flag.Var(&rects, "rect", "Rectangle to fill as x0,y0,x1,y1 (repeatable, alternative to -mask)")
	flag.Parse()

	if err := validateFlags(inputPath, maskPath, outputPath, inDir, outDir, rects); err != nil {
		log.Fatal(err)
	}

	if inDir != "" {
		if err := runBatch(inDir, outDir, maskPath, radius); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := runSingle(inputPath, maskPath, outputPath, radius, rects); err != nil {
		log.Fatal(err)
	}
}

func validateFlags(inputPath, maskPath, outputPath, inDir, outDir string, rects rectList) error {
	if inDir != "" {
		if outDir == "" {
			return errors.New("-indir requires -outdir")
		}
		if maskPath == "" {
			return errors.New("-indir requires -mask")
		}
		if inputPath != "" || len(rects) > 0 {
			return errors.New("-indir cannot be combined with -input or -rect")
		}
		return nil
	}
	if inputPath == "" || outputPath == "" {
		return errors.New("-input and -output are required")
	}
	if maskPath == "" && len(rects) == 0 {
		return errors.New("either -mask or -rect must be given")
	}
	if maskPath != "" && len(rects) > 0 {
		return errors.New("-mask and -rect are mutually exclusive")
	}
	return nil
}

func runSingle(inputPath, maskPath, outputPath string, radius int, rects rectList) error {
	src, err := images.DecodeFile(inputPath)
	if err != nil {
		return err
	}
	view := images.FromImage(src)
	h, w, _ := view.Shape()

	var mask *telea.Grid[float32]
	if maskPath != "" {
		mask, err = loadMask(maskPath, h, w)
		if err != nil {
			return err
		}
	} else {
		mask = images.MaskFromRects(h, w, rects...)
	}

	start := time.Now()
	if err := telea.Inpaint(view, mask, radius); err != nil {
		return errors.Wrapf(err, "inpaint %s", inputPath)
	}
	fmt.Printf("%s: inpainted %dx%d in %v\n", filepath.Base(inputPath), w, h, time.Since(start))

	return images.EncodeFile(outputPath, images.ToImage(view))
}

func runBatch(inDir, outDir, maskPath string, radius int) error {
	files, err := util.LoadDirectoryImageFiles(inDir)
	if err != nil {
		return errors.Wrapf(err, "read %s", inDir)
	}
	if len(files) == 0 {
		return errors.Errorf("no images found in %s", inDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var mask *telea.Grid[float32]
	for _, file := range files {
		src, err := images.DecodeFile(file.Path)
		if err != nil {
			return err
		}
		view := images.FromImage(src)
		h, w, _ := view.Shape()

		// The mask is loaded once and re-fit when frame dimensions change.
		if mask == nil {
			if mask, err = loadMask(maskPath, h, w); err != nil {
				return err
			}
		} else if mh, mw := mask.Shape(); mh != h || mw != w {
			mask = images.ResizeMask(mask, h, w)
		}

		start := time.Now()
		if err := telea.Inpaint(view, mask, radius); err != nil {
			return errors.Wrapf(err, "inpaint %s", file.Path)
		}

		outPath := filepath.Join(outDir, filepath.Base(file.Path))
		if err := images.EncodeFile(outPath, images.ToImage(view)); err != nil {
			return err
		}
		fmt.Printf("%s: inpainted %dx%d in %v -> %s\n",
			filepath.Base(file.Path), w, h, time.Since(start), outPath)
	}
	return nil
}

// loadMask reads a mask image and fits it to the target dimensions,
// reporting when a resize was needed.
func loadMask(path string, h, w int) (*telea.Grid[float32], error) {
	img, err := images.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	mask := images.MaskFromImage(img)
	if mh, mw := mask.Shape(); mh != h || mw != w {
		fmt.Printf("mask %s is %dx%d, resizing to %dx%d\n", filepath.Base(path), mw, mh, w, h)
		mask = images.ResizeMask(mask, h, w)
	}
	return mask, nil
}
