// Package nen defines the six Nen types and the affinity rules between them.
package nen

import (
	"math"
	"strings"
)

// Type is one of the six Nen categories. Exactly one is active per character.
type Type string

const (
	Enhancer    Type = "enhancer"
	Transmuter  Type = "transmuter"
	Emitter     Type = "emitter"
	Conjurer    Type = "conjurer"
	Manipulator Type = "manipulator"
	Specialist  Type = "specialist"
)

// ring is the hexagon order, clockwise from the top vertex.
var ring = [6]Type{Enhancer, Transmuter, Conjurer, Specialist, Manipulator, Emitter}

// legacyNames maps the Portuguese display values used by older sheet exports.
var legacyNames = map[string]Type{
	"reforço":        Enhancer,
	"transformação":  Transmuter,
	"emissão":        Emitter,
	"materialização": Conjurer,
	"manipulação":    Manipulator,
	"especialização": Specialist,
}

var colors = map[Type]string{
	Enhancer:    "#2ecc71",
	Transmuter:  "#d500f9",
	Emitter:     "#29b6f6",
	Conjurer:    "#ff1744",
	Manipulator: "#00e676",
	Specialist:  "#ffea00",
}

// FallbackColor is used when a type has no assigned color.
const FallbackColor = "#9b59b6"

// Types returns all Nen types in hexagon ring order.
func Types() []Type {
	out := make([]Type, len(ring))
	copy(out, ring[:])
	return out
}

// Parse resolves a type from its identifier or legacy display name.
func Parse(value string) (Type, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "", false
	}
	for _, t := range ring {
		if string(t) == normalized {
			return t, true
		}
	}
	if t, ok := legacyNames[normalized]; ok {
		return t, true
	}
	return "", false
}

// Valid reports whether t is one of the six Nen types.
func (t Type) Valid() bool {
	return t.Index() >= 0
}

// Index returns the ring position of t, or -1 when t is unknown.
func (t Type) Index() int {
	for i, candidate := range ring {
		if candidate == t {
			return i
		}
	}
	return -1
}

// Color returns the display color for t.
func (t Type) Color() string {
	if c, ok := colors[t]; ok {
		return c
	}
	return FallbackColor
}

// Distance returns the shortest hop count between a and b around the ring.
// Unknown types are reported as the maximum distance.
func Distance(a, b Type) int {
	ia, ib := a.Index(), b.Index()
	if ia < 0 || ib < 0 {
		return len(ring) / 2
	}
	d := ia - ib
	if d < 0 {
		d = -d
	}
	if d > len(ring)/2 {
		d = len(ring) - d
	}
	return d
}

const (
	// MinEfficiency is the lowest efficiency the distance falloff produces.
	MinEfficiency = 0.4
	// FalloffPerStep is the efficiency lost per hop around the ring.
	FalloffPerStep = 0.2
	// SpecialistFloor is the Specialist efficiency for every other active type.
	SpecialistFloor = 0.1
)

// specialistOverrides applies when Specialist is the active type.
var specialistOverrides = map[Type]float64{
	Specialist:  1.0,
	Conjurer:    0.8,
	Manipulator: 0.8,
	Transmuter:  0.6,
	Emitter:     0.6,
	Enhancer:    0.4,
}

// table holds efficiencies indexed by [active][target] ring position.
var table = buildTable()

func buildTable() [6][6]float64 {
	var out [6][6]float64
	for i, active := range ring {
		for j, target := range ring {
			out[i][j] = computeEfficiency(active, target)
		}
	}
	return out
}

func computeEfficiency(active, target Type) float64 {
	if active == Specialist {
		return specialistOverrides[target]
	}
	if target == Specialist {
		return SpecialistFloor
	}
	value := 1.0 - float64(Distance(active, target))*FalloffPerStep
	return round2(math.Max(MinEfficiency, value))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Efficiency returns how effective target is for a character whose active
// type is active. Unknown types yield 0.
func Efficiency(active, target Type) float64 {
	ia, it := active.Index(), target.Index()
	if ia < 0 || it < 0 {
		return 0
	}
	return table[ia][it]
}

// Affinity is one target's efficiency for an active type.
type Affinity struct {
	Type       Type
	Efficiency float64
	Active     bool
}

// Efficiencies returns the efficiency of every type in ring order for active.
func Efficiencies(active Type) []Affinity {
	out := make([]Affinity, 0, len(ring))
	for _, target := range ring {
		out = append(out, Affinity{
			Type:       target,
			Efficiency: Efficiency(active, target),
			Active:     target == active,
		})
	}
	return out
}
