// Package detection finds stop sign candidates in still images.
//
// A candidate is a red, approximately octagonal region. Detection is a
// color-first pipeline rather than an edge-first one:
//
//  1. Color Masking: select pixels in the red hue bands (imaging.HSVMask)
//  2. Cleanup: morphological open to suppress speckle (imaging.Open)
//  3. Contour Extraction: ordered outer boundaries of mask components
//  4. Polygon Approximation: Douglas-Peucker with a tolerance of 2% of the
//     contour perimeter
//  5. Filtering: keep polygons with exactly 8 vertices and enclosed area
//     above a minimum
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin at top-left,
// X rightward, Y downward. Bounding boxes are reported as origin plus
// width/height in source pixels.
//
// # Limitations
//
// The vertex-count test is deliberately blunt. A partially occluded sign
// that simplifies to 7 or 9 vertices is rejected, and any 8-vertex polygon
// is accepted whether or not it is convex or sign-shaped. The thresholds are
// tuning constants, exposed through Options but not derived from any
// calibration.
package detection
