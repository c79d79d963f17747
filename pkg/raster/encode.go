package raster

import (
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/neumorphic/pkg/errors"
)

// Downsample scales an image down by an integer factor with Catmull-Rom
// resampling. Rendering at factor x the target size and downsampling gives
// supersampled antialiasing on top of the rasterizer's own coverage AA.
// Factors below 2 return the source unchanged.
func Downsample(src *image.RGBA, factor int) *image.RGBA {
	if factor < 2 {
		return src
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()/factor, bounds.Dy()/factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}

// EncodePNG writes the image to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return errors.E("raster.EncodePNG", errors.KindEncode, png.Encode(w, img))
}

// WritePNG writes the image to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	const op = "raster.WritePNG"
	f, err := os.Create(path)
	if err != nil {
		return errors.E(op, errors.KindEncode, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.E(op, errors.KindEncode, err)
	}
	return errors.E(op, errors.KindEncode, f.Close())
}
