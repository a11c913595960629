// Package random provides the randomness capability used to resolve markers.
//
// Resolution never reaches for a global generator: every session is handed a
// Source, so a fixed seed (or a scripted Sequence in tests) reproduces the
// exact same observations.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// Factory creates a fresh Source for a new session.
type Factory func() (Source, error)

// New returns a deterministic Source for the seed.
func New(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewFactory returns a Factory that seeds every Source with seed, or with a
// fresh crypto seed when seed is 0.
func NewFactory(seed uint64) Factory {
	return func() (Source, error) {
		if seed != 0 {
			return New(seed), nil
		}

		fresh, err := NewSeed()
		if err != nil {
			return nil, err
		}

		return New(fresh), nil
	}
}

// Percent draws an integer in [0, 100).
func Percent(source Source) int {
	draw := int(source.Float64() * 100)
	if draw > 99 {
		return 99
	}
	if draw < 0 {
		return 0
	}
	return draw
}
