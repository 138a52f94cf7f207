package advanced

import (
	"embed"
	"log"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/rattrig/numeric"
)

// This file parses the svg fixtures and outputs triangles. This is not a full
// (or even correct) svg parser. It finds the one polygon in the file and reads
// its three points as exact rationals. If anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Triangle[numeric.Rat] {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	if len(pointStrings) != 3 {
		log.Fatalf("Fixture %q is not a triangle: %q", name, pointStrings)
	}

	points := make([]Vector[numeric.Rat], 0, 3)
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := numeric.ParseRat(coords[0])
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := numeric.ParseRat(coords[1])
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Vec(x, y))
	}

	return Triangle[numeric.Rat]{A: points[0], B: points[1], C: points[2]}
}

var fixtureNames = []string{"right", "scalene", "collinear", "fractional", "clockwise"}
