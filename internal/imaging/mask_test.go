package imaging

import (
	"image"
	"image/color"
	"testing"
)

func maskPixelSet(mask *image.Gray, x, y int) bool {
	return mask.GrayAt(x, y).Y == 255
}

func TestHSVMask_RedRanges(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})  // pure red, hue 0
	img.Set(1, 0, color.RGBA{255, 0, 30, 255}) // red from the wrap-around band, hue ≈ 353
	img.Set(2, 0, color.RGBA{0, 255, 0, 255})  // green

	mask := HSVMask(img, RedMaskOptions())

	if !maskPixelSet(mask, 0, 0) {
		t.Error("pure red not selected by low hue band")
	}
	if !maskPixelSet(mask, 1, 0) {
		t.Error("high-hue red not selected by wrap band")
	}
	if maskPixelSet(mask, 2, 0) {
		t.Error("green selected by red mask")
	}
}

func TestHSVMask_SaturationAndValueFloors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{40, 0, 0, 255})     // red hue but too dark
	img.Set(1, 0, color.RGBA{255, 210, 210, 255}) // red hue but washed out
	img.Set(2, 0, color.RGBA{200, 30, 30, 255})  // solid sign red

	mask := HSVMask(img, RedMaskOptions())

	if maskPixelSet(mask, 0, 0) {
		t.Error("dark red passed the value floor")
	}
	if maskPixelSet(mask, 1, 0) {
		t.Error("pale pink passed the saturation floor")
	}
	if !maskPixelSet(mask, 2, 0) {
		t.Error("solid red rejected")
	}
}

func TestHSVMask_EmptyResult(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}

	mask := HSVMask(img, RedMaskOptions())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if maskPixelSet(mask, x, y) {
				t.Fatalf("blue pixel (%d,%d) selected", x, y)
			}
		}
	}
}
