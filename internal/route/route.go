package route

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/roadsight/stopsign/internal/detection"
)

// DefaultThreshold is the proximity radius, exclusive, in node coordinate
// units. An arbitrary demonstration value, not derived from calibration.
const DefaultThreshold = 50.0

// Node is a waypoint on a route: a position plus a flag recording whether a
// stop sign was matched near it. Nodes are plain mutable values; Annotate
// flips HasStop in place.
type Node struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	HasStop bool    `json:"has_stop"`
}

// Aligner maps a detection's pixel coordinates into route coordinate space.
//
// This is an explicit stub for sensor alignment. A real system would project
// image-space detections through camera calibration and GPS fusion before
// comparing them to map positions; this program has no such transform, so
// the default aligner compares raw pixel values against node coordinates
// directly.
type Aligner interface {
	ToRoute(x, y int) (float64, float64)
}

type identityAligner struct{}

func (identityAligner) ToRoute(x, y int) (float64, float64) {
	return float64(x), float64(y)
}

// Identity passes pixel coordinates through unchanged.
var Identity Aligner = identityAligner{}

// Options configures the proximity annotator.
type Options struct {
	// Threshold is the exclusive distance bound for a match.
	Threshold float64

	// Aligner maps detection coordinates into route space. Nil means
	// Identity.
	Aligner Aligner
}

// DefaultOptions returns the standard annotation tuning.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Aligner:   Identity,
	}
}

// SampleRoute returns the fixed three-node demonstration route with all
// flags cleared.
func SampleRoute() []Node {
	return []Node{
		{X: 100.0, Y: 150.0},
		{X: 200.0, Y: 250.0},
		{X: 300.0, Y: 350.0},
	}
}

// Annotate marks every node that lies within the threshold distance of any
// detected sign's bounding-box origin, measured as plain 2D Euclidean
// distance after the aligner is applied.
//
// The comparison point is the box's top-left corner, not its center. The
// flag update is a monotonic OR: a node already marked stays marked, so
// re-running Annotate over the same inputs is idempotent and never clears
// flags. Empty node or sign lists produce no mutation.
func Annotate(nodes []Node, signs []detection.StopSign, opts Options) {
	aligner := opts.Aligner
	if aligner == nil {
		aligner = Identity
	}

	for i := range nodes {
		for _, sign := range signs {
			sx, sy := aligner.ToRoute(sign.BoundingBox.X, sign.BoundingBox.Y)
			dx := nodes[i].X - sx
			dy := nodes[i].Y - sy
			if math.Sqrt(dx*dx+dy*dy) < opts.Threshold {
				nodes[i].HasStop = true
			}
		}
	}
}

// ParseRoute parses a route given as "x,y;x,y;..." into nodes with cleared
// flags. Whitespace around numbers and separators is ignored; an empty
// string is an error.
func ParseRoute(spec string) ([]Node, error) {
	parts := strings.Split(spec, ";")
	nodes := make([]Node, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		coords := strings.SplitN(part, ",", 2)
		if len(coords) != 2 {
			return nil, fmt.Errorf("invalid route node %q: want \"x,y\"", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x in route node %q: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y in route node %q: %w", part, err)
		}
		nodes = append(nodes, Node{X: x, Y: y})
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("route %q contains no nodes", spec)
	}
	return nodes, nil
}
