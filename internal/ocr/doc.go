// Package ocr provides an optional Tesseract check that a detected region
// actually contains the word STOP.
//
// The shape detector is purely geometric, so any red octagon passes it.
// Reading the text inside the candidate box is a cheap second opinion when
// Tesseract is available on the system (gosseract needs the native library
// and language data installed; apt-get install tesseract-ocr
// tesseract-ocr-eng on Debian-likes).
//
// OCR failure is reported as an error and should be treated as "could not
// verify", not as "not a sign"; callers degrade to the geometric result.
package ocr
