package dice

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRollDice(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		wantErr error
	}{
		{name: "single d6", request: Request{Dice: []Spec{{Sides: 6, Count: 1}}, Seed: 42}},
		{name: "2d6 + 1d8", request: Request{Dice: []Spec{{Sides: 6, Count: 2}, {Sides: 8, Count: 1}}, Seed: 42}},
		{name: "no dice", request: Request{Seed: 42}, wantErr: ErrMissingDice},
		{name: "invalid sides", request: Request{Dice: []Spec{{Sides: 0, Count: 1}}}, wantErr: ErrInvalidDiceSpec},
		{name: "invalid count", request: Request{Dice: []Spec{{Sides: 6, Count: 0}}}, wantErr: ErrInvalidDiceSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RollDice(tt.request)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RollDice() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(result.Rolls) != len(tt.request.Dice) {
				t.Fatalf("RollDice() got %d rolls, want %d", len(result.Rolls), len(tt.request.Dice))
			}
			total := 0
			for i, roll := range result.Rolls {
				if len(roll.Results) != tt.request.Dice[i].Count {
					t.Errorf("Roll[%d] got %d results, want %d", i, len(roll.Results), tt.request.Dice[i].Count)
				}
				sum := 0
				for j, r := range roll.Results {
					if r < 1 || r > roll.Sides {
						t.Errorf("Roll[%d].Results[%d] = %d, out of range [1, %d]", i, j, r, roll.Sides)
					}
					sum += r
				}
				if roll.Total != sum {
					t.Errorf("Roll[%d].Total = %d, want %d", i, roll.Total, sum)
				}
				total += roll.Total
			}
			if result.Total != total {
				t.Errorf("Result.Total = %d, want %d", result.Total, total)
			}
		})
	}
}

func TestRollDiceDeterminism(t *testing.T) {
	request := Request{Dice: []Spec{{Sides: 12, Count: 2}, {Sides: 6, Count: 4}}, Seed: 12345}

	first, err := RollDice(request)
	if err != nil {
		t.Fatalf("RollDice() error = %v", err)
	}
	second, err := RollDice(request)
	if err != nil {
		t.Fatalf("RollDice() error = %v", err)
	}
	if first.Total != second.Total {
		t.Fatalf("totals differ: %d vs %d", first.Total, second.Total)
	}
	for i := range first.Rolls {
		for j := range first.Rolls[i].Results {
			if first.Rolls[i].Results[j] != second.Rolls[i].Results[j] {
				t.Fatalf("Roll[%d].Results[%d] differs", i, j)
			}
		}
	}
}

func TestParseNotation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Spec
		wantErr error
	}{
		{in: "1d8", want: Spec{Sides: 8, Count: 1}},
		{in: "2D6", want: Spec{Sides: 6, Count: 2}},
		{in: " d20 ", want: Spec{Sides: 20, Count: 1}},
		{in: "", wantErr: ErrInvalidNotation},
		{in: "8", wantErr: ErrInvalidNotation},
		{in: "xd6", wantErr: ErrInvalidNotation},
		{in: "1d", wantErr: ErrInvalidNotation},
		{in: "0d6", wantErr: ErrInvalidDiceSpec},
	}
	for _, tc := range tests {
		got, err := ParseNotation(tc.in)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("ParseNotation(%q) error = %v, want %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseNotation(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestRollCheck(t *testing.T) {
	t.Parallel()

	expected := rand.New(rand.NewSource(7)).Intn(CheckSides) + 1
	check := RollCheck(rand.New(rand.NewSource(7)), 3)
	if check.Die != expected {
		t.Fatalf("Die = %d, want %d", check.Die, expected)
	}
	if check.Total != expected+3 {
		t.Fatalf("Total = %d, want %d", check.Total, expected+3)
	}
	if check.Critical != (expected == 20) || check.Fumble != (expected == 1) {
		t.Fatalf("critical/fumble flags wrong for die %d: %+v", expected, check)
	}
}

func TestRollDamage(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	first := rng.Intn(8) + 1

	damage, err := RollDamage(rand.New(rand.NewSource(99)), "1d8", 3)
	if err != nil {
		t.Fatalf("RollDamage() error = %v", err)
	}
	if damage.Total != first+3 {
		t.Fatalf("Total = %d, want %d", damage.Total, first+3)
	}
	if damage.Notation != "1d8" {
		t.Fatalf("Notation = %q, want 1d8", damage.Notation)
	}

	floored, err := RollDamage(rand.New(rand.NewSource(99)), "1d8", -50)
	if err != nil {
		t.Fatalf("RollDamage() error = %v", err)
	}
	if floored.Total != 0 {
		t.Fatalf("Total = %d, want 0", floored.Total)
	}

	if _, err := RollDamage(rand.New(rand.NewSource(1)), "pow", 0); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("RollDamage(pow) error = %v, want %v", err, ErrInvalidNotation)
	}
}
