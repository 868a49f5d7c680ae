package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/roadsight/stopsign/internal/detection"
	"github.com/roadsight/stopsign/internal/imaging"
	"github.com/roadsight/stopsign/internal/ocr"
	"github.com/roadsight/stopsign/internal/route"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version before flag parsing so it works without an image arg
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("stopsign %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		outPath    = flag.String("out", "", "write an annotated copy of the image to this path (PNG/JPEG by extension)")
		routeSpec  = flag.String("route", "", "route nodes as \"x,y;x,y;...\" (default: built-in sample route)")
		threshold  = flag.Float64("threshold", route.DefaultThreshold, "proximity radius for marking route nodes, exclusive")
		minArea    = flag.Float64("min-area", 1000, "minimum candidate polygon area in square pixels, exclusive")
		epsilon    = flag.Float64("epsilon", 0.02, "polygon approximation tolerance as a fraction of contour perimeter")
		vertices   = flag.Int("vertices", 8, "exact vertex count a candidate polygon must have")
		satMin     = flag.Float64("sat-min", 70.0/255.0, "minimum HSV saturation for the red mask (0-1)")
		valMin     = flag.Float64("val-min", 50.0/255.0, "minimum HSV value for the red mask (0-1)")
		morphIters = flag.Int("morph-iters", 2, "erode/dilate iterations for mask cleanup")
		verifyText = flag.Bool("verify-text", false, "OCR each candidate region and report whether it reads STOP (requires Tesseract)")
		language   = flag.String("lang", "eng", "Tesseract language code for -verify-text")
		verbose    = flag.Bool("verbose", false, "log per-candidate details to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stopsign [flags] <image>\n\n")
		fmt.Fprintf(os.Stderr, "Detects red octagonal regions in an image and marks nearby route nodes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	// Log to stderr; stdout carries the route listing.
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	cache := imaging.NewImageCache()
	img, err := cache.Load(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		if info, err := imaging.LoadImageInfo(cache, imagePath); err == nil {
			log.Printf("image %s: %dx%d %s, %d bytes",
				imagePath, info.Width, info.Height, info.Format, info.FileSizeBytes)
		}
	}

	opts := detection.DefaultOptions()
	opts.MinArea = *minArea
	opts.EpsilonFraction = *epsilon
	opts.Vertices = *vertices
	opts.MorphIterations = *morphIters
	opts.Mask.SatMin = *satMin
	opts.Mask.ValMin = *valMin

	result, err := detection.DetectStopSigns(img, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		log.Printf("%d candidate(s)", result.Count)
		for i, sign := range result.Signs {
			log.Printf(" candidate %d: bbox=(%d,%d %dx%d) vertices=%d area=%.0f",
				i, sign.BoundingBox.X, sign.BoundingBox.Y,
				sign.BoundingBox.Width, sign.BoundingBox.Height,
				len(sign.Polygon), sign.Area)
		}
	}

	nodes := route.SampleRoute()
	if *routeSpec != "" {
		nodes, err = route.ParseRoute(*routeSpec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -route: %v\n", err)
			os.Exit(2)
		}
	}

	route.Annotate(nodes, result.Signs, route.Options{
		Threshold: *threshold,
		Aligner:   route.Identity,
	})

	fmt.Println("Route:")
	for i, node := range nodes {
		fmt.Printf(" Node %d: (x=%g, y=%g), hasStop=%t\n", i, node.X, node.Y, node.HasStop)
	}

	if *verifyText {
		for i, sign := range result.Signs {
			ok, text, err := ocr.VerifySign(img, sign.Rect(), *language)
			if err != nil {
				log.Printf("warning: OCR failed for candidate %d: %v", i, err)
				continue
			}
			fmt.Printf(" Candidate %d: readsStop=%t (text=%q)\n", i, ok, text)
		}
	}

	if *outPath != "" {
		boxes := make([]image.Rectangle, 0, result.Count)
		polygons := make([][]image.Point, 0, result.Count)
		for _, sign := range result.Signs {
			boxes = append(boxes, sign.Rect())
			polygons = append(polygons, sign.PolygonPoints())
		}
		annotated := imaging.DrawDetections(img, boxes, polygons)
		if err := imaging.SaveImage(annotated, *outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing annotated image: %v\n", err)
			os.Exit(1)
		}
		if *verbose {
			log.Printf("annotated image written to %s", *outPath)
		}
	}
}
