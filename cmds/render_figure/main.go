package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/figures/figures"
	"github.com/unixpickle/model3d/model2d"
)

func main() {
	var shape string
	var x, y float64
	var width, height float64
	var scale float64
	flag.StringVar(&shape, "shape", "square", "shape to render: triangle, square, or rectangle")
	flag.Float64Var(&x, "x", 0, "x coordinate of the center")
	flag.Float64Var(&y, "y", 0, "y coordinate of the center")
	flag.Float64Var(&width, "width", 2, "side length, rectangle width, or triangle base")
	flag.Float64Var(&height, "height", 1, "rectangle or triangle height")
	flag.Float64Var(&scale, "scale", 100, "pixels per unit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: render_figure [flags] <output.png>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	outputPath := args[0]

	log.Println("Creating figure...")
	figure, err := NewFigure(shape, figures.XY(x, y), width, height)
	essentials.Must(err)
	log.Println(figure)

	log.Println("Rendering...")
	essentials.Must(model2d.Rasterize(outputPath, figures.Outline(figure), scale))
}

// NewFigure creates a figure by shape name.
func NewFigure(shape string, center figures.Point[float64], width, height float64) (figures.Figure[float64], error) {
	var res figures.Figure[float64]
	var err error
	switch shape {
	case "triangle":
		res, err = figures.NewTriangleCentered(center, width, height)
	case "square":
		res, err = figures.NewSquare(center, width)
	case "rectangle":
		res, err = figures.NewRectangle(center, width, height)
	default:
		return nil, errors.Errorf("unknown shape: %s", shape)
	}
	if err != nil {
		return nil, errors.Wrap(err, "create "+shape)
	}
	return res, nil
}
