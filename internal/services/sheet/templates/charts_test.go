package templates

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	platformi18n "github.com/louisbranch/hunter-sheet/internal/platform/i18n"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"
)

func TestRadarChartDrawsSixVertices(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, RadarChart(character.Default().Attributes, "", RadarSize, nil))
	shape := mustOne(t, findAll(doc, byClass("radar-shape")), "radar shapes")
	if got := len(strings.Fields(attr(shape, "points"))); got != 6 {
		t.Fatalf("radar shape points = %d, want 6", got)
	}
	if got := attr(shape, "stroke"); got != nen.FallbackColor {
		t.Fatalf("radar stroke = %q, want fallback %q", got, nen.FallbackColor)
	}
	if got := len(findAll(doc, byClass("radar-grid"))); got != 6 {
		t.Fatalf("grid rings = %d, want 6", got)
	}
	mustOne(t, findAll(doc, byClass("radar-grid-zero")), "zero rings")
}

func TestRadarChartLabelsShowTrueValues(t *testing.T) {
	t.Parallel()

	attrs := character.AttributeSet{Strength: 20, Intelligence: 0, Charisma: -3, Determination: 3}
	doc := renderDoc(t, RadarChart(attrs, "#fff", RadarSize, nil))

	want := map[string]string{
		"strength":      "+20",
		"intelligence":  "0",
		"charisma":      "-3",
		"determination": "+3",
	}
	for key, label := range want {
		vertex := mustOne(t, findAll(doc, byAttr("data-attribute", key)), key+" vertices")
		value := mustOne(t, findAll(vertex, byClass("radar-value")), key+" values")
		if got := textContent(value); got != label {
			t.Fatalf("%s label = %q, want %q", key, got, label)
		}
	}

	// Strength is clamped to the outer ring at the top axis.
	strength := mustOne(t, findAll(doc, byAttr("data-attribute", "strength")), "strength vertices")
	dot := mustOne(t, findAll(strength, byTag("circle")), "strength circles")
	if attr(dot, "cx") != "140" || attr(dot, "cy") != "50.4" {
		t.Fatalf("strength point = (%s,%s), want (140,50.4)", attr(dot, "cx"), attr(dot, "cy"))
	}
}

func TestRadarChartLocalizesAxisLabels(t *testing.T) {
	t.Parallel()

	loc := platformi18n.NewLocalizer(language.BrazilianPortuguese)
	doc := renderDoc(t, RadarChart(character.AttributeSet{}, "", 0, loc))
	labels := findAll(doc, byClass("radar-label"))
	want := []string{"FOR", "INT", "CAR", "DET", "CON", "DES"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %d, want %d", len(labels), len(want))
	}
	for i, label := range labels {
		if got := textContent(label); got != want[i] {
			t.Fatalf("label[%d] = %q, want %q", i, got, want[i])
		}
	}
}

func TestNenHexagonSpecialist(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, NenHexagon(nen.Specialist, nil))
	want := map[nen.Type]string{
		nen.Enhancer:    "40%",
		nen.Transmuter:  "60%",
		nen.Conjurer:    "80%",
		nen.Specialist:  "100%",
		nen.Manipulator: "80%",
		nen.Emitter:     "60%",
	}
	for typ, percent := range want {
		node := mustOne(t, findAll(doc, byAttr("data-type", string(typ))), string(typ)+" nodes")
		if got := attr(node, "data-efficiency"); got != percent {
			t.Fatalf("%s efficiency = %q, want %q", typ, got, percent)
		}
	}
	label := mustOne(t, findAll(doc, byClass("hexagon-percent")), "percent labels")
	if got := textContent(label); got != "100%" {
		t.Fatalf("active percent = %q, want 100%%", got)
	}
	if got := len(findAll(doc, byClass("hexagon-dot"))); got != 6 {
		t.Fatalf("efficiency dots = %d, want 6", got)
	}
}

func TestNenHexagonFloorsSpecialistForOtherTypes(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, NenHexagon(nen.Enhancer, nil))
	specialist := mustOne(t, findAll(doc, byAttr("data-type", string(nen.Specialist))), "specialist nodes")
	if got := attr(specialist, "data-efficiency"); got != "10%" {
		t.Fatalf("specialist efficiency = %q, want 10%%", got)
	}
	if dots := findAll(specialist, byClass("hexagon-dot")); len(dots) != 0 {
		t.Fatalf("specialist dots = %d, want 0", len(dots))
	}
	if got := len(findAll(doc, byClass("hexagon-dot"))); got != 5 {
		t.Fatalf("efficiency dots = %d, want 5", got)
	}

	shape := mustOne(t, findAll(doc, byClass("hexagon-shape")), "hexagon shapes")
	points := strings.Fields(attr(shape, "points"))
	if len(points) != 6 {
		t.Fatalf("hexagon points = %d, want 6", len(points))
	}
	if points[3] != "50,54" {
		t.Fatalf("specialist point = %q, want floor point 50,54", points[3])
	}
	if points[0] != "50,10" {
		t.Fatalf("enhancer point = %q, want 50,10", points[0])
	}
}
