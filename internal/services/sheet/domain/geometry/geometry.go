// Package geometry projects bounded category values onto a regular polygon
// for radar and hexagon charts.
//
// Index 0 sits at the top of the chart and later indices proceed clockwise
// in SVG coordinates (y grows downward). Every function is pure.
package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Point is a 2D coordinate in chart space.
type Point struct {
	X float64
	Y float64
}

// Range is the visual value range a chart displays.
type Range struct {
	Min float64
	Max float64
}

// Clamp limits v to the range bounds.
func (r Range) Clamp(v float64) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Normalize maps v to [0,1] within the range. A degenerate range (Min equal
// to or above Max) always yields 0.
func (r Range) Normalize(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	return (r.Clamp(v) - r.Min) / (r.Max - r.Min)
}

// Frame positions a chart: its center, full radius and the extra distance
// between the outer ring and axis labels.
type Frame struct {
	Center      Point
	Radius      float64
	LabelOffset float64
}

// Sample is one category value to plot.
type Sample struct {
	Key   string
	Value float64
}

// Vertex is one projected category.
type Vertex struct {
	Key string
	// Value is the true input value, shown in labels.
	Value float64
	// Ratio is the plotted fraction of the radius.
	Ratio  float64
	Point  Point
	Anchor Point
}

// Polygon is a closed chart shape with one vertex per category.
type Polygon struct {
	Vertices []Vertex
}

// Angle returns the axis angle in radians for index i of n categories.
func Angle(i, n int) float64 {
	if n <= 0 {
		return -math.Pi / 2
	}
	return 2*math.Pi*float64(i)/float64(n) - math.Pi/2
}

// At returns the point at ratio of the radius along axis i of n.
func (f Frame) At(i, n int, ratio float64) Point {
	return f.along(Angle(i, n), f.Radius*ratio)
}

// Anchor returns the label anchor for axis i of n.
func (f Frame) Anchor(i, n int) Point {
	return f.along(Angle(i, n), f.Radius+f.LabelOffset)
}

func (f Frame) along(angle, distance float64) Point {
	return Point{
		X: f.Center.X + math.Cos(angle)*distance,
		Y: f.Center.Y + math.Sin(angle)*distance,
	}
}

// Project maps samples onto the frame, clamping each value to rng.
func Project(samples []Sample, rng Range, frame Frame) Polygon {
	n := len(samples)
	vertices := make([]Vertex, 0, n)
	for i, sample := range samples {
		ratio := rng.Normalize(sample.Value)
		vertices = append(vertices, Vertex{
			Key:    sample.Key,
			Value:  sample.Value,
			Ratio:  ratio,
			Point:  frame.At(i, n, ratio),
			Anchor: frame.Anchor(i, n),
		})
	}
	return Polygon{Vertices: vertices}
}

// ProjectEfficiency maps efficiency ratios in [0,1] onto the frame. Plotted
// ratios never drop below floor so a zero efficiency still shows a visible
// vertex; Vertex.Value keeps the true efficiency.
func ProjectEfficiency(samples []Sample, floor float64, frame Frame) Polygon {
	unit := Range{Min: 0, Max: 1}
	n := len(samples)
	vertices := make([]Vertex, 0, n)
	for i, sample := range samples {
		ratio := math.Max(floor, unit.Normalize(sample.Value))
		ratio = math.Min(1, ratio)
		vertices = append(vertices, Vertex{
			Key:    sample.Key,
			Value:  sample.Value,
			Ratio:  ratio,
			Point:  frame.At(i, n, ratio),
			Anchor: frame.Anchor(i, n),
		})
	}
	return Polygon{Vertices: vertices}
}

// Ring returns the n points of a reference ring at ratio of the radius.
func Ring(n int, ratio float64, frame Frame) []Point {
	if n <= 0 {
		return nil
	}
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, frame.At(i, n, ratio))
	}
	return points
}

// Points returns the polygon vertex positions in order.
func (p Polygon) Points() []Point {
	out := make([]Point, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		out = append(out, v.Point)
	}
	return out
}

// SVGPoints formats the polygon for an SVG points attribute.
func (p Polygon) SVGPoints() string {
	return FormatPoints(p.Points())
}

// FormatPoints formats points as "x,y x,y ..." with two-decimal precision.
func FormatPoints(points []Point) string {
	parts := make([]string, 0, len(points))
	for _, point := range points {
		parts = append(parts, FormatCoord(point.X)+","+FormatCoord(point.Y))
	}
	return strings.Join(parts, " ")
}

// FormatCoord formats one coordinate with at most two decimals.
func FormatCoord(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		// Normalizes -0 so it never prints as "-0".
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
