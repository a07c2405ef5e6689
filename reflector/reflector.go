// Package reflector implements the fixed reversing drum (Umkehrwalze) and
// its historical catalog, including the thin M4 variants.
package reflector

import (
	"errors"
	"fmt"

	"github.com/enigma-m3/enigma/wiring"
)

var (
	// ErrUnknown reports a reflector name not present in the catalog.
	ErrUnknown = errors.New("unknown reflector")
	// ErrInvalidWiring reports a reflector wiring that is not involutive
	// or maps some letter to itself.
	ErrInvalidWiring = errors.New("invalid reflector wiring")
)

var catalog = map[string]string{
	"A":      "EJMZALYXVBWFCRQUONTSPIKHGD",
	"B":      "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	"C":      "FVPJIAOYEDRZXWGCTKUQSBNMHL",
	"B-Thin": "ENKQAUYWJICOPBLMDXZVFTHRGS",
	"C-Thin": "RDOBJNTKVEHMLFCWZAXGYIPSUQ",
}

var names = []string{"A", "B", "C", "B-Thin", "C-Thin"}

// Names returns the reflector catalog names in order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Reflector is a fixed involutive permutation with no moving parts.
type Reflector struct {
	name string
	perm wiring.Permutation
}

// New looks up a catalog reflector by name.
func New(name string) (*Reflector, error) {
	mapping, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknown, name, names)
	}
	return FromWiring(name, mapping)
}

// FromWiring builds a reflector from an explicit 26-letter mapping.  The
// mapping must be involutive and fixed-point-free; a failure here means the
// wiring data itself is wrong, not the caller's configuration.
func FromWiring(name, mapping string) (*Reflector, error) {
	perm, err := wiring.New(mapping)
	if err != nil {
		return nil, err
	}
	for i := 0; i < wiring.Size; i++ {
		j := perm.Forward(i)
		if j == i {
			return nil, fmt.Errorf("%w: %s maps %q to itself",
				ErrInvalidWiring, name, rune('A'+i))
		}
		if perm.Forward(j) != i {
			return nil, fmt.Errorf("%w: %s is not involutive at %q",
				ErrInvalidWiring, name, rune('A'+i))
		}
	}
	return &Reflector{name: name, perm: perm}, nil
}

// Name returns the catalog name of the reflector.
func (f *Reflector) Name() string { return f.name }

// Reflect turns an alphabet index back through the wiring.  Reflectors are
// self-inverse by construction, so only the forward direction exists.
func (f *Reflector) Reflect(c int) int {
	return f.perm.Forward(c)
}
