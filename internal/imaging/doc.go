// Package imaging provides the image-side building blocks for stop sign
// detection: loading and caching source frames, HSV color masking,
// morphological cleanup of binary masks, and overlay rendering of results.
//
// All operations work with standard Go image.Image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Masks
//
// Binary masks are *image.Gray values that are strictly two-valued: 255 for
// selected pixels, 0 otherwise. HSVMask produces them and Open keeps them
// that way; downstream contour extraction in the detection package relies on
// this.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining operations are
// stateless transforms that never modify their input image and can run
// concurrently on different images.
package imaging
