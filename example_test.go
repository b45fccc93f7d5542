package smooth_test

import (
	"fmt"
	"os"

	"github.com/curvekit/smooth"
)

func ExampleSVGPath() {
	points := smooth.FromPairs([][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	fmt.Println(smooth.SVGPath(points, smooth.SVGOptions{}))
	// Output:
	// M 0,0 C 2,0 8,-2 10,0 C 12,2 12,8 10,10 C 8,12 2,10 0,10
}

func ExampleControlPoints() {
	points := smooth.FromPairs([][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	for _, cp := range smooth.ControlPoints(points) {
		fmt.Println(cp.Tuples())
	}
	// Output:
	// [[2 0] [8 -2]]
	// [[12 2] [12 8]]
	// [[8 12] [2 10]]
}

func ExampleWriteSVG() {
	points := []smooth.Point{smooth.Pt(0, 0), smooth.Pt(1, 0), smooth.Pt(1, 1)}

	fmt.Printf(`<path d="`)
	if err := smooth.WriteSVG(os.Stdout, smooth.Elements(points), smooth.SVGOptions{Precision: 2}); err != nil {
		panic(err)
	}
	fmt.Println(`" fill="none" stroke="black" />`)
	// Output:
	// <path d="M 0,0 C 0.2,0 0.8,-0.2 1,0 C 1.2,0.2 1,0.8 1,1" fill="none" stroke="black" />
}

func ExampleValidate() {
	points, err := smooth.PointsFromSlices([][]float64{{0, 0}, {1, 2}})
	if err != nil {
		panic(err)
	}
	fmt.Println(smooth.Validate(points))
	// Output:
	// <nil>
}
