package machine

import (
	"fmt"

	"github.com/enigma-m3/enigma/rotor"
	"github.com/enigma-m3/enigma/wiring"
)

// step executes one rotor-advance event.  Both notch states are sampled
// before any rotor moves; reading them mid-sequence would lose the
// double-step anomaly.
//
// Per keystroke: the right rotor always steps.  If the middle rotor sat on
// its own notch, the middle and left rotors step together (the double-step:
// the middle rotor advanced into its notch on the previous keystroke and
// now advances again).  Otherwise, if the right rotor sat on its notch, the
// carry steps the middle rotor.
func (m *Machine) step() {
	rightAtNotch := m.right.AtNotch()
	middleAtNotch := m.middle.AtNotch()

	m.right.Step()
	if middleAtNotch {
		m.middle.Step()
		m.left.Step()
	} else if rightAtNotch {
		m.middle.Step()
	}
}

// Positions returns the letters in the three rotor windows, ordered left,
// middle, right.
func (m *Machine) Positions() string {
	return string([]byte{m.left.Position(), m.middle.Position(), m.right.Position()})
}

// SetPositions turns the rotors to a new three-letter position, which also
// becomes the position Reset restores.  The whole string is validated
// before any rotor moves.
func (m *Machine) SetPositions(pos string) error {
	if len(pos) != 3 {
		return fmt.Errorf("%w: want three letters, got %q", rotor.ErrPosition, pos)
	}
	for _, r := range pos {
		if _, ok := wiring.Index(r); !ok {
			return fmt.Errorf("%w: %q in %q", rotor.ErrPosition, r, pos)
		}
	}
	rotors := []*rotor.Rotor{m.left, m.middle, m.right}
	for i, r := range rotors {
		if err := r.SetPosition(rune(pos[i])); err != nil {
			return err
		}
	}
	m.settings.Position = m.Positions()
	return nil
}

// Reset restores the rotors to the configured start position without
// rebuilding the machine.
func (m *Machine) Reset() {
	m.left.Reset()
	m.middle.Reset()
	m.right.Reset()
}
