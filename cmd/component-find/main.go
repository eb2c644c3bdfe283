package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AxissXs/component-find/internal/imaging"
	"github.com/AxissXs/component-find/internal/labeling"
	"github.com/AxissXs/component-find/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Fprintln(os.Stderr, "component-find - identifies connected components in an image and colors them")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: component-find [options] <input_image> <output_image>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  COMPONENT_FIND_LOG_LEVEL=debug    Log label creation and merges")
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("component-find %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	connectivity := flag.Int("connectivity", 8, "pixel adjacency rule: 4 or 8")
	threshold := flag.Uint("threshold", 128, "grayscale level at or above which a pixel is foreground (0-255)")
	stats := flag.Bool("stats", false, "print per-component area statistics")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	inputPath, outputPath := flag.Arg(0), flag.Arg(1)

	if *threshold > 255 {
		fmt.Fprintf(os.Stderr, "threshold must be 0-255, got %d\n", *threshold)
		os.Exit(2)
	}

	// All diagnostics go to stderr; stdout carries only the confirmation.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	opts := labeling.Options{Connectivity: labeling.Connectivity(*connectivity)}
	if os.Getenv("COMPONENT_FIND_LOG_LEVEL") == "debug" {
		opts.Trace = log.New(os.Stderr, "labeling: ", log.Ltime)
	}

	img, err := imaging.Load(inputPath)
	if err != nil {
		log.Fatalf("Input error: %v", err)
	}

	bitmap := imaging.Binarize(img, uint8(*threshold))

	result, err := labeling.FindComponents(bitmap, opts)
	if err != nil {
		log.Fatalf("Labeling error: %v", err)
	}

	out := render.Components(result)
	if err := imaging.Save(out, outputPath); err != nil {
		log.Fatalf("Output error: %v", err)
	}

	if *stats {
		printStats(labeling.Regions(result))
	}
	fmt.Printf("Saved %s (%d components, %d colors used)\n", outputPath, result.Components, result.Components)
}

func printStats(regions []labeling.Region) {
	summary := labeling.Summarize(regions)
	fmt.Printf("Areas: mean %.1f, stddev %.1f, min %d, max %d\n",
		summary.MeanArea, summary.StdDev, summary.MinArea, summary.MaxArea)
	for _, r := range regions {
		fmt.Printf("  component %d: area %d, bounds (%d,%d)-(%d,%d), centroid (%.1f,%.1f)\n",
			r.Label, r.Area, r.Bounds.X1, r.Bounds.Y1, r.Bounds.X2, r.Bounds.Y2,
			r.CentroidX, r.CentroidY)
	}
}
