package templates

import (
	"github.com/a-h/templ"

	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/geometry"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/meter"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"
)

const svgNamespace = "http://www.w3.org/2000/svg"

const (
	// RadarSize is the default radar edge length in chart units.
	RadarSize = 280
	// SummonRadarSize is the radar edge used on summon mini sheets.
	SummonRadarSize = 160

	radarRadiusRatio = 0.32
	radarLabelRatio  = 0.09
)

// RadarRange is the attribute range the radar displays; values outside it
// are drawn on the nearest bound.
var RadarRange = geometry.Range{Min: -4, Max: 8}

var radarGrid = []float64{-2, 0, 2, 4, 6, 8}

const (
	// HexagonSize is the hexagon viewBox edge.
	HexagonSize = 100
	// HexagonFloor is the smallest plotted efficiency.
	HexagonFloor = 0.1

	hexagonRadius    = 40
	hexagonInnerRing = 0.6
)

// RadarFrame returns the frame for a radar drawn at size.
func RadarFrame(size int) geometry.Frame {
	s := float64(size)
	return geometry.Frame{
		Center:      geometry.Point{X: s / 2, Y: s / 2},
		Radius:      s * radarRadiusRatio,
		LabelOffset: s * radarLabelRatio,
	}
}

// HexagonFrame returns the frame for the Nen hexagon.
func HexagonFrame() geometry.Frame {
	return geometry.Frame{
		Center: geometry.Point{X: HexagonSize / 2, Y: HexagonSize / 2},
		Radius: hexagonRadius,
	}
}

// RadarSamples lists attrs in radar order.
func RadarSamples(attrs character.AttributeSet) []geometry.Sample {
	order := character.RadarOrder()
	samples := make([]geometry.Sample, 0, len(order))
	for _, attr := range order {
		samples = append(samples, geometry.Sample{Key: string(attr), Value: float64(attrs.Value(attr))})
	}
	return samples
}

// AffinitySamples lists the efficiencies of active in ring order.
func AffinitySamples(active nen.Type) []geometry.Sample {
	affinities := nen.Efficiencies(active)
	samples := make([]geometry.Sample, 0, len(affinities))
	for _, affinity := range affinities {
		samples = append(samples, geometry.Sample{Key: string(affinity.Type), Value: affinity.Efficiency})
	}
	return samples
}

// RadarChart draws attrs on a six-axis radar. Vertex labels show the true
// score even when the plotted point is clamped.
func RadarChart(attrs character.AttributeSet, color string, size int, loc Localizer) templ.Component {
	if size <= 0 {
		size = RadarSize
	}
	if color == "" {
		color = nen.FallbackColor
	}
	return component(func(m *markup) {
		frame := RadarFrame(size)
		samples := RadarSamples(attrs)
		n := len(samples)
		s := float64(size)
		edge := itoa(size)

		m.open("svg",
			"xmlns", svgNamespace,
			"class", "radar-chart",
			"width", edge,
			"height", edge,
			"viewBox", "0 0 "+edge+" "+edge,
			"role", "img",
			"aria-label", T(loc, "sheet.section.radar"),
			"style", "--theme-color: "+color,
		)
		for _, value := range radarGrid {
			ring := geometry.FormatPoints(geometry.Ring(n, RadarRange.Normalize(value), frame))
			if value == 0 {
				m.void("polygon", "class", "radar-grid radar-grid-zero", "points", ring,
					"fill", "rgba(255,255,255,0.03)", "stroke", "rgba(255,255,255,0.4)", "stroke-width", "1.5")
				continue
			}
			m.void("polygon", "class", "radar-grid", "points", ring,
				"fill", "none", "stroke", "rgba(255,255,255,0.1)", "stroke-width", "0.5", "stroke-dasharray", "4 2")
		}
		for i := 0; i < n; i++ {
			end := frame.At(i, n, 1)
			m.void("line", "class", "radar-axis",
				"x1", geometry.FormatCoord(frame.Center.X), "y1", geometry.FormatCoord(frame.Center.Y),
				"x2", geometry.FormatCoord(end.X), "y2", geometry.FormatCoord(end.Y),
				"stroke", "rgba(255,255,255,0.05)")
		}

		shape := geometry.Project(samples, RadarRange, frame)
		m.void("polygon", "class", "radar-shape", "points", shape.SVGPoints(),
			"fill", "rgba(255,255,255,0.2)", "stroke", color, "stroke-width", "2")
		for _, vertex := range shape.Vertices {
			m.open("g", "class", "radar-vertex", "data-attribute", vertex.Key)
			m.void("circle",
				"cx", geometry.FormatCoord(vertex.Point.X), "cy", geometry.FormatCoord(vertex.Point.Y),
				"r", geometry.FormatCoord(s*0.01), "fill", "#fff", "stroke", color)
			m.element("text", meter.FormatSigned(int(vertex.Value)),
				"class", "radar-value",
				"x", geometry.FormatCoord(vertex.Point.X), "y", geometry.FormatCoord(vertex.Point.Y-s*0.03),
				"text-anchor", "middle", "font-size", geometry.FormatCoord(s*0.028))
			m.close("g")
		}
		for _, vertex := range shape.Vertices {
			m.element("text", T(loc, "sheet.attribute."+vertex.Key+".short"),
				"class", "radar-label",
				"x", geometry.FormatCoord(vertex.Anchor.X), "y", geometry.FormatCoord(vertex.Anchor.Y+s*0.02),
				"text-anchor", "middle", "dominant-baseline", "middle",
				"font-size", geometry.FormatCoord(max(8, s*0.035)))
		}
		m.close("svg")
	})
}

// NenHexagon draws the affinity hexagon for active. Zero efficiencies are
// plotted at HexagonFloor; every node's title carries the true percentage.
func NenHexagon(active nen.Type, loc Localizer) templ.Component {
	return component(func(m *markup) {
		frame := HexagonFrame()
		samples := AffinitySamples(active)
		n := len(samples)
		color := active.Color()
		edge := itoa(HexagonSize)

		m.open("svg",
			"xmlns", svgNamespace,
			"class", "nen-hexagon",
			"viewBox", "0 0 "+edge+" "+edge,
			"role", "img",
			"aria-label", T(loc, "sheet.section.affinity"),
			"data-active", string(active),
		)
		m.void("polygon", "class", "hexagon-outer", "points", geometry.FormatPoints(geometry.Ring(n, 1, frame)),
			"fill", "none", "stroke", "rgba(255,255,255,0.1)", "stroke-width", "0.5", "stroke-dasharray", "2 2")
		m.void("polygon", "class", "hexagon-inner", "points", geometry.FormatPoints(geometry.Ring(n, hexagonInnerRing, frame)),
			"fill", "none", "stroke", "rgba(255,255,255,0.05)", "stroke-width", "0.5")
		for i := 0; i < n; i++ {
			end := frame.At(i, n, 1)
			m.void("line", "class", "hexagon-axis",
				"x1", geometry.FormatCoord(frame.Center.X), "y1", geometry.FormatCoord(frame.Center.Y),
				"x2", geometry.FormatCoord(end.X), "y2", geometry.FormatCoord(end.Y),
				"stroke", "rgba(255,255,255,0.05)", "stroke-width", "0.5")
		}

		shape := geometry.ProjectEfficiency(samples, HexagonFloor, frame)
		m.void("polygon", "class", "hexagon-shape", "points", shape.SVGPoints(),
			"fill", color, "fill-opacity", "0.3", "stroke", color, "stroke-width", "2", "stroke-linejoin", "round")

		for i, vertex := range shape.Vertices {
			target := nen.Type(vertex.Key)
			isActive := target == active
			outer := frame.At(i, n, 1)
			label := T(loc, "sheet.nen."+vertex.Key)
			percent := meter.FormatPercent(vertex.Value)

			m.open("g", "class", "hexagon-node", "data-type", vertex.Key, "data-efficiency", percent)
			m.element("title", label+" "+percent)
			nodeRadius, nodeFill := "1", "#333"
			if isActive {
				nodeRadius, nodeFill = "2", color
			}
			m.void("circle", "class", "hexagon-vertex",
				"cx", geometry.FormatCoord(outer.X), "cy", geometry.FormatCoord(outer.Y),
				"r", nodeRadius, "fill", nodeFill)
			if vertex.Value > HexagonFloor {
				dot := frame.At(i, n, vertex.Value)
				m.void("circle", "class", "hexagon-dot",
					"cx", geometry.FormatCoord(dot.X), "cy", geometry.FormatCoord(dot.Y),
					"r", "2", "fill", "#fff")
			}

			labelY, percentY := outer.Y+10, outer.Y-5
			if outer.Y < frame.Center.Y {
				labelY, percentY = outer.Y-6, outer.Y+8
			}
			labelFill, labelWeight := "#666", "normal"
			if isActive {
				labelFill, labelWeight = color, "900"
			}
			m.element("text", label,
				"class", "hexagon-label",
				"x", geometry.FormatCoord(outer.X), "y", geometry.FormatCoord(labelY),
				"text-anchor", "middle", "font-size", "6", "fill", labelFill, "font-weight", labelWeight)
			if isActive {
				m.element("text", percent,
					"class", "hexagon-percent",
					"x", geometry.FormatCoord(outer.X), "y", geometry.FormatCoord(percentY),
					"text-anchor", "middle", "font-size", "4", "fill", "#fff", "font-weight", "bold")
			}
			m.close("g")
		}
		m.close("svg")
	})
}
