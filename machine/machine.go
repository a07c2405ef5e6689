// Package machine assembles the plugboard, rotor bank and reflector into
// the complete signal path and drives the stepping mechanism.
//
// The cipher is reciprocal: a machine in a given configuration decrypts
// exactly what an identically configured machine encrypted, so Process is
// used unchanged in both directions.
package machine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/enigma-m3/enigma/plugboard"
	"github.com/enigma-m3/enigma/reflector"
	"github.com/enigma-m3/enigma/rotor"
	"github.com/enigma-m3/enigma/wiring"
)

// ErrInvalidInput reports a rune outside A-Z/a-z passed to Process.  The
// machine never guesses at non-alphabetic input; callers normalize first.
var ErrInvalidInput = errors.New("input is not a letter")

// Machine is one cipher machine instance.  The reflector, plugboard, rotor
// wirings and ring settings are fixed at construction; only the three rotor
// positions mutate, one stepping event per enciphered letter.
//
// A Machine is not safe for concurrent use: the rotor positions are shared
// mutable state.  Use one instance per logical session.
type Machine struct {
	reflector *reflector.Reflector
	plugboard *plugboard.Plugboard
	left      *rotor.Rotor
	middle    *rotor.Rotor
	right     *rotor.Rotor
	settings  Settings
}

// New builds a machine from a daily key.  All configuration errors surface
// here, never mid-message.
func New(s Settings) (*Machine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Rotors[0] == s.Rotors[1] || s.Rotors[0] == s.Rotors[2] || s.Rotors[1] == s.Rotors[2] {
		return nil, fmt.Errorf("%w: %v uses a rotor twice", ErrRotorSelection, s.Rotors)
	}
	refl, err := reflector.New(s.Reflector)
	if err != nil {
		return nil, err
	}
	rotors := make([]*rotor.Rotor, 3)
	for i := range rotors {
		rotors[i], err = rotor.New(s.Rotors[i], s.Rings[i], rune(s.Position[i]))
		if err != nil {
			return nil, err
		}
	}
	board, err := plugboard.New(s.Plugboard)
	if err != nil {
		return nil, err
	}
	m := &Machine{
		reflector: refl,
		plugboard: board,
		left:      rotors[0],
		middle:    rotors[1],
		right:     rotors[2],
	}
	m.settings = Settings{
		Reflector: s.Reflector,
		Rotors:    append([]string(nil), s.Rotors...),
		Rings:     append([]int(nil), s.Rings...),
		Position:  m.Positions(),
		Plugboard: board.Pairs(),
	}
	return m, nil
}

// Settings returns the canonicalized daily key the machine was built from.
func (m *Machine) Settings() Settings {
	s := m.settings
	s.Rotors = append([]string(nil), s.Rotors...)
	s.Rings = append([]int(nil), s.Rings...)
	return s
}

// Process enciphers (or, identically, deciphers) text.  Lowercase letters
// are folded to upper.  Any other rune fails the whole call before a single
// rotor has stepped, so a rejected message leaves the positions untouched.
func (m *Machine) Process(text string) (string, error) {
	in := make([]int, 0, len(text))
	for _, r := range text {
		c, ok := wiring.Index(r)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidInput, r)
		}
		in = append(in, c)
	}
	out := make([]byte, len(in))
	for i, c := range in {
		m.step()
		c = m.plugboard.Swap(c)
		c = m.right.Signal(c, rotor.Entering)
		c = m.middle.Signal(c, rotor.Entering)
		c = m.left.Signal(c, rotor.Entering)
		c = m.reflector.Reflect(c)
		c = m.left.Signal(c, rotor.Returning)
		c = m.middle.Signal(c, rotor.Returning)
		c = m.right.Signal(c, rotor.Returning)
		c = m.plugboard.Swap(c)
		out[i] = wiring.Letter(c)
	}
	return string(out), nil
}

// Summary renders the configuration the way an operator's sheet would list
// it, for display and logging.
func (m *Machine) Summary() string {
	s := m.settings
	plug := s.Plugboard
	if plug == "" {
		plug = "(none)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-31s %s\n", "Reflector (Umkehrwalze):", s.Reflector)
	fmt.Fprintf(&b, "%-31s %s  (left, middle, right)\n", "Rotors (Walzen):",
		strings.Join(s.Rotors, " "))
	fmt.Fprintf(&b, "%-31s %02d %02d %02d\n", "Ring settings (Ringstellung):",
		s.Rings[0], s.Rings[1], s.Rings[2])
	fmt.Fprintf(&b, "%-31s %s\n", "Start position (Grundstellung):", s.Position)
	fmt.Fprintf(&b, "%-31s %s\n", "Plugboard (Steckerbrett):", plug)
	return b.String()
}

// Groups reformats letter text into the historical five-letter radio groups.
func Groups(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i += 5 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 5
		if end > len(text) {
			end = len(text)
		}
		b.WriteString(text[i:end])
	}
	return b.String()
}
