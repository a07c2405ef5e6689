// Package rotor implements the stepping substitution discs (Walzen) of the
// machine, including the historical rotor catalog I-VIII.
package rotor

import (
	"errors"
	"fmt"

	"github.com/enigma-m3/enigma/wiring"
)

// Direction is the side a signal enters the rotor from.
type Direction int

const (
	// Entering is the right-to-left pass toward the reflector.
	Entering Direction = iota
	// Returning is the left-to-right pass back out of the stack.
	Returning
)

var (
	// ErrUnknown reports a rotor name not present in the catalog.
	ErrUnknown = errors.New("unknown rotor")
	// ErrRingSetting reports a ring setting outside 1..26.
	ErrRingSetting = errors.New("ring setting out of range")
	// ErrPosition reports a rotor position that is not a letter A-Z.
	ErrPosition = errors.New("rotor position is not a letter")
)

// catalog entries are the historical Wehrmacht/Kriegsmarine rotors.  Rotors
// I-V carry a single turnover notch, VI-VIII carry two.
type catalogEntry struct {
	mapping string
	notches string
}

var catalog = map[string]catalogEntry{
	"I":    {"EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q"},
	"II":   {"AJDKSIRUXBLHWTMCQGZNPYFVOE", "E"},
	"III":  {"BDFHJLCPRTXVZNYEIWGAKMUSQO", "V"},
	"IV":   {"ESOVPZJAYQUIRHXLNFTGKDCMWB", "J"},
	"V":    {"VZBRGITYUPSDNHLXAWMJQOFECK", "Z"},
	"VI":   {"JPGVOUMFYQBENHZRDKASXLICTW", "ZM"},
	"VII":  {"NZJHGRCXMYSWBOUFAIVLPEKQDT", "ZM"},
	"VIII": {"FKQHTLXOCBJSPDZRAMEWNIUYGV", "ZM"},
}

// names in catalog order, for display and validation messages.
var names = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"}

// Names returns the rotor catalog names in order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Rotor is one substitution disc.  The wiring, notches and ring setting are
// fixed at construction; only the rotational position mutates, via Step,
// SetPosition and Reset.
type Rotor struct {
	name    string
	perm    wiring.Permutation
	notches [wiring.Size]bool
	ring    int // 0-based ring offset
	pos     int // current position, 0..25
	home    int // position restored by Reset
}

// New builds a catalog rotor with the given ring setting (1..26) and
// starting position letter.
func New(name string, ring int, position rune) (*Rotor, error) {
	ent, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknown, name, names)
	}
	if ring < 1 || ring > wiring.Size {
		return nil, fmt.Errorf("%w: rotor %s ring %d", ErrRingSetting, name, ring)
	}
	pos, ok := wiring.Index(position)
	if !ok {
		return nil, fmt.Errorf("%w: rotor %s position %q", ErrPosition, name, position)
	}
	r := &Rotor{
		name: name,
		perm: wiring.MustNew(ent.mapping),
		ring: ring - 1,
		pos:  pos,
		home: pos,
	}
	for _, n := range ent.notches {
		r.notches[n-'A'] = true
	}
	return r, nil
}

// Name returns the catalog name of the rotor.
func (r *Rotor) Name() string { return r.name }

// Signal routes an alphabet index through the rotor.  The input is shifted
// into the wiring frame by (position - ring), mapped through the wiring in
// the pass direction, and shifted back out.
func (r *Rotor) Signal(c int, d Direction) int {
	shift := r.pos - r.ring
	c = wiring.Mod(c + shift)
	if d == Entering {
		c = r.perm.Forward(c)
	} else {
		c = r.perm.Inverse(c)
	}
	return wiring.Mod(c - shift)
}

// AtNotch reports whether the rotor currently sits on a turnover notch.
// Double-notch rotors report true at either notch.
func (r *Rotor) AtNotch() bool {
	return r.notches[r.pos]
}

// Step advances the rotor one position, wrapping from Z to A.
func (r *Rotor) Step() {
	r.pos = (r.pos + 1) % wiring.Size
}

// Position returns the letter visible in the rotor window.
func (r *Rotor) Position() byte {
	return wiring.Letter(r.pos)
}

// SetPosition turns the rotor to the given letter and makes it the new
// home position for Reset.
func (r *Rotor) SetPosition(position rune) error {
	pos, ok := wiring.Index(position)
	if !ok {
		return fmt.Errorf("%w: rotor %s position %q", ErrPosition, r.name, position)
	}
	r.pos = pos
	r.home = pos
	return nil
}

// Reset turns the rotor back to its home position.
func (r *Rotor) Reset() {
	r.pos = r.home
}
