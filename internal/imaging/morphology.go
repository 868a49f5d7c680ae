package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
)

// Open performs a morphological opening on a binary mask: the given number
// of erosion passes followed by the same number of dilation passes, each
// with a radius-1 structuring element.
//
// Opening removes isolated speckle noise smaller than the structuring
// element and smooths small protrusions while approximately preserving the
// size of larger regions. The pass counts are fixed-parameter denoising, not
// adaptive; two iterations is the conventional default for sign masks.
//
// bild's erode/dilate operate on RGBA, so the mask is re-binarized after
// each pass to keep it strictly two-valued.
func Open(mask *image.Gray, iterations int) *image.Gray {
	out := mask
	for i := 0; i < iterations; i++ {
		out = binarize(effect.Erode(out, 1))
	}
	for i := 0; i < iterations; i++ {
		out = binarize(effect.Dilate(out, 1))
	}
	return out
}

// binarize collapses an RGBA image back to a two-valued grayscale mask,
// thresholding the red channel at mid-gray.
func binarize(img *image.RGBA) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y).R >= 128 {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}
