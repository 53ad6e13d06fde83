// Package random seeds the pseudo-random sources used for dice.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed returns a seed read from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Source builds a *rand.Rand for one roll.
type Source func() (*rand.Rand, error)

// Seeded returns a Source that draws a fresh crypto seed per call.
func Seeded() Source {
	return func() (*rand.Rand, error) {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		return rand.New(rand.NewSource(seed)), nil
	}
}

// Fixed returns a Source that always starts from seed.
func Fixed(seed int64) Source {
	return func() (*rand.Rand, error) {
		return rand.New(rand.NewSource(seed)), nil
	}
}
