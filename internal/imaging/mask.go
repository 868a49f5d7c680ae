package imaging

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HueRange is a closed interval of hue angles in degrees (0-360).
type HueRange struct {
	Lo float64 `json:"lo"` // Lower bound in degrees (inclusive)
	Hi float64 `json:"hi"` // Upper bound in degrees (inclusive)
}

// MaskOptions configures HSV color masking.
//
// A pixel is selected when its hue falls inside any of the listed ranges AND
// its saturation and value both meet the configured minimums. Hue does not
// wrap: colors that straddle 0 degrees (such as red) are expressed as two
// explicit ranges rather than one wrapping range.
type MaskOptions struct {
	// Hues are the accepted hue intervals. Ranges are combined with a
	// logical OR.
	Hues []HueRange

	// SatMin is the minimum saturation (0.0 to 1.0, inclusive).
	SatMin float64

	// ValMin is the minimum value/brightness (0.0 to 1.0, inclusive).
	ValMin float64
}

// RedMaskOptions returns masking options tuned for traffic-sign red.
//
// The defaults select two hue bands near 0 and 360 degrees with moderate
// saturation and value floors, which catches strongly red pixels while
// rejecting dark maroons and washed-out pinks. The saturation and value
// floors correspond to 70 and 50 on an 8-bit scale.
func RedMaskOptions() MaskOptions {
	return MaskOptions{
		Hues: []HueRange{
			{Lo: 0, Hi: 20},
			{Lo: 340, Hi: 360},
		},
		SatMin: 70.0 / 255.0,
		ValMin: 50.0 / 255.0,
	}
}

// HSVMask builds a binary mask of the pixels selected by opts.
//
// The returned image shares the source bounds; selected pixels are white
// (255) and everything else is black (0). Conversion to HSV uses go-colorful
// per pixel; 16-bit source channels are reduced to 8 bits first, matching
// how the rest of this package samples colors.
func HSVMask(img image.Image, opts MaskOptions) *image.Gray {
	bounds := img.Bounds()
	mask := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := colorful.Color{
				R: float64(r>>8) / 255.0,
				G: float64(g>>8) / 255.0,
				B: float64(b>>8) / 255.0,
			}
			h, s, v := c.Hsv()

			if s < opts.SatMin || v < opts.ValMin {
				continue
			}
			for _, hr := range opts.Hues {
				if h >= hr.Lo && h <= hr.Hi {
					mask.SetGray(x, y, color.Gray{Y: 255})
					break
				}
			}
		}
	}

	return mask
}
