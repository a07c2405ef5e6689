// Package wiring provides the fixed 26-letter permutation primitive shared
// by the rotors, the reflector and the plugboard.
package wiring

import (
	"errors"
	"fmt"
)

// Alphabet is the full symbol set of the machine, in index order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of symbols in the alphabet.
const Size = len(Alphabet)

// ErrInvalidWiring reports a mapping that is not a bijection over the
// alphabet.
var ErrInvalidWiring = errors.New("wiring is not a bijection over the alphabet")

// Permutation is an invertible mapping over the alphabet indices 0..25.
// It is a pure value: once built it never changes.
type Permutation struct {
	forward [Size]byte
	inverse [Size]byte
}

// New builds a Permutation from a 26-letter mapping string where the letter
// at index i is the image of alphabet letter i.  The mapping must use every
// letter A-Z exactly once.
func New(mapping string) (Permutation, error) {
	var p Permutation
	if len(mapping) != Size {
		return p, fmt.Errorf("%w: mapping %q has length %d, want %d",
			ErrInvalidWiring, mapping, len(mapping), Size)
	}
	var seen [Size]bool
	for i := 0; i < Size; i++ {
		c := mapping[i]
		if c < 'A' || c > 'Z' {
			return p, fmt.Errorf("%w: mapping %q contains %q",
				ErrInvalidWiring, mapping, rune(c))
		}
		j := int(c - 'A')
		if seen[j] {
			return p, fmt.Errorf("%w: mapping %q repeats %q",
				ErrInvalidWiring, mapping, rune(c))
		}
		seen[j] = true
		p.forward[i] = byte(j)
		p.inverse[j] = byte(i)
	}
	return p, nil
}

// MustNew is New for wirings known to be valid at compile time, such as the
// rotor and reflector catalogs.
func MustNew(mapping string) Permutation {
	p, err := New(mapping)
	if err != nil {
		panic(err)
	}
	return p
}

// Forward maps an alphabet index through the permutation.
func (p Permutation) Forward(i int) int {
	return int(p.forward[i])
}

// Inverse maps an alphabet index back through the permutation.
func (p Permutation) Inverse(i int) int {
	return int(p.inverse[i])
}

// Mod reduces n into the alphabet index range 0..25, handling negative
// offsets from ring-setting arithmetic.
func Mod(n int) int {
	return ((n % Size) + Size) % Size
}

// Index returns the alphabet index of c, case-folding lowercase letters.
// ok is false for anything outside A-Z/a-z.
func Index(c rune) (int, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	}
	return 0, false
}

// Letter returns the alphabet letter at index i.
func Letter(i int) byte {
	return Alphabet[i]
}
