package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/covercircle/geom"
)

// This file parses the svg fixtures into point sequences. This is not a full
// (or even correct) svg parser. It finds the first polygon or polyline, and
// returns its points in document order, which is the order they get pushed. If
// anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []geom.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	shapes := rootEl.FindAll("polygon")
	shapes = append(shapes, rootEl.FindAll("polyline")...)
	if len(shapes) == 0 {
		log.Fatalf("No polygons or polylines found in fixture %q", name)
	}
	if len(shapes) > 1 {
		log.Fatalf("More than one shape found in fixture %q", name)
	}

	pointString := shapes[0].Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]geom.Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points
}

// Some ad hoc fixtures

// Points evenly spaced on a circle, starting at the given angle.
func RegularPolygon(n int, radius, startAngle float64) []geom.Point {
	points := make([]geom.Point, 0, n)
	arm := geom.Vector{X: radius}.Rotated(startAngle)
	var origin geom.Point
	for i := 0; i < n; i++ {
		points = append(points, origin.Add(arm.RotatedTurns(float64(i)/float64(n))))
	}
	return points
}

// A square lattice of integer points, with every coordinate in [-half, half].
// Integer coordinates keep every orientation test exact, and the lattice is
// full of collinear triples.
func Lattice(half int) []geom.Point {
	var points []geom.Point
	for y := -half; y <= half; y++ {
		for x := -half; x <= half; x++ {
			points = append(points, geom.Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

// Scale fixture points, so that tests can check the radius scales with them.
func scalePoints(points []geom.Point, factor float64) []geom.Point {
	result := make([]geom.Point, len(points))
	for i, p := range points {
		result[i] = geom.Point{X: p.X * factor, Y: p.Y * factor}
	}
	return result
}
