package nen

import "testing"

func TestEfficiencySelfIsFull(t *testing.T) {
	t.Parallel()

	for _, active := range Types() {
		if got := Efficiency(active, active); got != 1.0 {
			t.Fatalf("Efficiency(%s, %s) = %v, want 1", active, active, got)
		}
	}
}

func TestSpecialistActiveUsesOverrideTable(t *testing.T) {
	t.Parallel()

	want := map[Type]float64{
		Specialist:  1.0,
		Conjurer:    0.8,
		Manipulator: 0.8,
		Transmuter:  0.6,
		Emitter:     0.6,
		Enhancer:    0.4,
	}
	for target, expected := range want {
		if got := Efficiency(Specialist, target); got != expected {
			t.Fatalf("Efficiency(specialist, %s) = %v, want %v", target, got, expected)
		}
	}
}

func TestSpecialistTargetIsFloorForOtherActiveTypes(t *testing.T) {
	t.Parallel()

	for _, active := range Types() {
		if active == Specialist {
			continue
		}
		if got := Efficiency(active, Specialist); got != SpecialistFloor {
			t.Fatalf("Efficiency(%s, specialist) = %v, want %v", active, got, SpecialistFloor)
		}
	}
}

func TestEfficiencyFollowsRingDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		active Type
		target Type
		want   float64
	}{
		{active: Enhancer, target: Transmuter, want: 0.8},
		{active: Enhancer, target: Emitter, want: 0.8},
		{active: Enhancer, target: Conjurer, want: 0.6},
		{active: Enhancer, target: Manipulator, want: 0.6},
		{active: Transmuter, target: Emitter, want: 0.6},
		{active: Conjurer, target: Emitter, want: 0.4},
		{active: Manipulator, target: Transmuter, want: 0.4},
		{active: Emitter, target: Conjurer, want: 0.4},
	}
	for _, tc := range tests {
		if got := Efficiency(tc.active, tc.target); got != tc.want {
			t.Fatalf("Efficiency(%s, %s) = %v, want %v", tc.active, tc.target, got, tc.want)
		}
	}
}

func TestDistanceWrapsAroundRing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b Type
		want int
	}{
		{a: Enhancer, b: Enhancer, want: 0},
		{a: Enhancer, b: Emitter, want: 1},
		{a: Enhancer, b: Specialist, want: 3},
		{a: Transmuter, b: Emitter, want: 2},
		{a: Emitter, b: Transmuter, want: 2},
	}
	for _, tc := range tests {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Fatalf("Distance(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestEfficienciesRingOrderAndActiveFlag(t *testing.T) {
	t.Parallel()

	got := Efficiencies(Conjurer)
	if len(got) != 6 {
		t.Fatalf("len(Efficiencies) = %d, want 6", len(got))
	}
	wantOrder := []Type{Enhancer, Transmuter, Conjurer, Specialist, Manipulator, Emitter}
	for i, affinity := range got {
		if affinity.Type != wantOrder[i] {
			t.Fatalf("Efficiencies[%d].Type = %s, want %s", i, affinity.Type, wantOrder[i])
		}
		if affinity.Active != (affinity.Type == Conjurer) {
			t.Fatalf("Efficiencies[%d].Active = %t for %s", i, affinity.Active, affinity.Type)
		}
	}
}

func TestEfficiencyUnknownTypeIsZero(t *testing.T) {
	t.Parallel()

	if got := Efficiency("psychic", Enhancer); got != 0 {
		t.Fatalf("Efficiency(unknown, enhancer) = %v, want 0", got)
	}
}

func TestParseAcceptsIdentifiersAndLegacyNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Type
		ok    bool
	}{
		{input: "specialist", want: Specialist, ok: true},
		{input: "  Enhancer ", want: Enhancer, ok: true},
		{input: "Especialização", want: Specialist, ok: true},
		{input: "Materialização", want: Conjurer, ok: true},
		{input: "", ok: false},
		{input: "psychic", ok: false},
	}
	for _, tc := range tests {
		got, ok := Parse(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Parse(%q) = (%q, %t), want (%q, %t)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestColorFallback(t *testing.T) {
	t.Parallel()

	if got := Specialist.Color(); got != "#ffea00" {
		t.Fatalf("Specialist.Color() = %q, want %q", got, "#ffea00")
	}
	if got := Type("unknown").Color(); got != FallbackColor {
		t.Fatalf("unknown Color() = %q, want %q", got, FallbackColor)
	}
}
