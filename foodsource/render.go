package foodsource

import (
	"math"
	"strconv"
	"strings"
)

// Render returns a multi-vehicle itinerary:
//
//	Distance: 14
//	Route:
//	Vehicle 1: D#0(0,0)#1(0,3)#2(4,3)#3(4,0)D#0(0,0)
//
// Every depot occurrence except the first closes the open segment (depot text,
// then a line break); every depot occurrence except the last opens the next one
// (line break, "Vehicle k: ", depot text). Customers are appended as they come.
//
// The distance is TotalDistanceStrict, or TotalDistanceFull when the route is
// degenerate, so the header is always finite.
//
// Complexity: O(len).
func (f *FoodSource) Render() string {
	dist := f.TotalDistanceStrict()
	if math.IsInf(dist, 1) {
		dist = f.TotalDistanceFull()
	}

	var b strings.Builder
	b.WriteString("Distance: ")
	b.WriteString(strconv.FormatFloat(dist, 'f', -1, 64))
	b.WriteString("\nRoute:")

	vehicle := 1
	last := len(f.route) - 1
	for pos, n := range f.route {
		if !n.IsDepot() {
			b.WriteString(n.String())
			continue
		}
		if pos != 0 {
			b.WriteString(n.String())
			b.WriteByte('\n')
		}
		if pos != last {
			b.WriteString("\nVehicle ")
			b.WriteString(strconv.Itoa(vehicle))
			b.WriteString(": ")
			b.WriteString(n.String())
			vehicle++
		}
	}

	return b.String()
}

// String implements fmt.Stringer via Render.
func (f *FoodSource) String() string { return f.Render() }
