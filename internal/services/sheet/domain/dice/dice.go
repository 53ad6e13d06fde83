// Package dice rolls the polyhedral dice used by attribute checks and skill
// damage.
package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

var (
	// ErrMissingDice indicates a roll request without dice.
	ErrMissingDice = errors.New("at least one die is required")
	// ErrInvalidDiceSpec indicates a spec with non-positive sides or count.
	ErrInvalidDiceSpec = errors.New("dice spec must have positive sides and count")
	// ErrInvalidNotation indicates a dice expression that could not be parsed.
	ErrInvalidNotation = errors.New("dice notation is invalid")
)

// CheckSides is the die rolled for attribute checks.
const CheckSides = 20

// Spec describes Count dice with Sides faces.
type Spec struct {
	Sides int `json:"sides"`
	Count int `json:"count"`
}

// String renders s in NdS notation.
func (s Spec) String() string {
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

// Request is a seeded roll of one or more specs.
type Request struct {
	Dice []Spec
	Seed int64
}

// Roll is the outcome of one spec.
type Roll struct {
	Sides   int   `json:"sides"`
	Results []int `json:"results"`
	Total   int   `json:"total"`
}

// Result is the outcome of a request.
type Result struct {
	Rolls []Roll `json:"rolls"`
	Total int    `json:"total"`
}

// RollDice rolls the request dice in order. Equal seeds and specs yield
// equal results.
func RollDice(request Request) (Result, error) {
	return RollWithRng(rand.New(rand.NewSource(request.Seed)), request.Dice)
}

// RollWithRng rolls specs with a caller-owned random source.
func RollWithRng(rng *rand.Rand, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0
	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidDiceSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := range results {
			value := rollDie(rng, spec.Sides)
			results[i] = value
			rollTotal += value
		}
		rolls = append(rolls, Roll{Sides: spec.Sides, Results: results, Total: rollTotal})
		total += rollTotal
	}

	return Result{Rolls: rolls, Total: total}, nil
}

// ParseNotation parses "NdS" or "dS" (count defaults to 1).
func ParseNotation(notation string) (Spec, error) {
	raw := strings.ToLower(strings.TrimSpace(notation))
	countPart, sidesPart, ok := strings.Cut(raw, "d")
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}
	count := 1
	if countPart != "" {
		n, err := strconv.Atoi(countPart)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
		}
		count = n
	}
	sides, err := strconv.Atoi(sidesPart)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}
	spec := Spec{Sides: sides, Count: count}
	if spec.Sides <= 0 || spec.Count <= 0 {
		return Spec{}, ErrInvalidDiceSpec
	}
	return spec, nil
}

// Check is a d20 attribute check.
type Check struct {
	Die      int  `json:"die"`
	Modifier int  `json:"modifier"`
	Total    int  `json:"total"`
	Critical bool `json:"critical"`
	Fumble   bool `json:"fumble"`
}

// RollCheck rolls a d20 and adds modifier. A natural 20 is a critical and a
// natural 1 a fumble regardless of the modifier.
func RollCheck(rng *rand.Rand, modifier int) Check {
	die := rollDie(rng, CheckSides)
	return Check{
		Die:      die,
		Modifier: modifier,
		Total:    die + modifier,
		Critical: die == CheckSides,
		Fumble:   die == 1,
	}
}

// Damage is a damage roll plus a flat bonus.
type Damage struct {
	Notation string `json:"notation"`
	Result   Result `json:"result"`
	Bonus    int    `json:"bonus"`
	Total    int    `json:"total"`
}

// RollDamage rolls notation and adds bonus. The total never drops below 0.
func RollDamage(rng *rand.Rand, notation string, bonus int) (Damage, error) {
	spec, err := ParseNotation(notation)
	if err != nil {
		return Damage{}, err
	}
	result, err := RollWithRng(rng, []Spec{spec})
	if err != nil {
		return Damage{}, err
	}
	total := max(result.Total+bonus, 0)
	return Damage{Notation: spec.String(), Result: result, Bonus: bonus, Total: total}, nil
}

func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
