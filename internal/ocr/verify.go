package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// ReadRegion runs OCR over a rectangular region of an image and returns the
// recognized text.
//
// The region is cropped, written to a temporary PNG (Tesseract wants a file
// path), and recognized with the given Tesseract language code (e.g. "eng").
// The temporary file is removed before returning.
func ReadRegion(img image.Image, region image.Rectangle, language string) (string, error) {
	cropped := imaging.Crop(img, region)

	tmpFile, err := os.CreateTemp("", "stopsign-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, cropped); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

// ContainsStopWord reports whether OCR output contains the word STOP,
// ignoring case and surrounding noise characters.
func ContainsStopWord(text string) bool {
	return strings.Contains(strings.ToUpper(text), "STOP")
}

// VerifySign OCRs a candidate region and reports whether it reads as a stop
// sign. The recognized text is returned trimmed for logging.
func VerifySign(img image.Image, region image.Rectangle, language string) (bool, string, error) {
	text, err := ReadRegion(img, region, language)
	if err != nil {
		return false, "", err
	}
	return ContainsStopWord(text), strings.TrimSpace(text), nil
}
