// Package plugboard implements the manual letter-pair swap board
// (Steckerbrett) applied before and after the rotor stack.
package plugboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/enigma-m3/enigma/wiring"
)

// MaxPairs is the number of cables that shipped with the machine.
const MaxPairs = 10

// ErrInvalidPlugboard reports a pair specification that cannot describe a
// physical plugboard: too many pairs, a reused letter, a self-pair, or a
// malformed token.
var ErrInvalidPlugboard = errors.New("invalid plugboard")

// Plugboard is a partial involutive mapping over the alphabet.  Letters not
// in any pair map to themselves.  Immutable once constructed.
type Plugboard struct {
	swap  [wiring.Size]byte
	pairs []string
}

// New parses a space-separated list of two-letter pairs, e.g. "AB CD EF".
// Lowercase letters are folded to upper.  The empty string is a valid board
// with no cables.
func New(spec string) (*Plugboard, error) {
	p := &Plugboard{}
	for i := range p.swap {
		p.swap[i] = byte(i)
	}
	fields := strings.Fields(strings.ToUpper(spec))
	if len(fields) > MaxPairs {
		return nil, fmt.Errorf("%w: %d pairs exceeds the %d available cables",
			ErrInvalidPlugboard, len(fields), MaxPairs)
	}
	var used [wiring.Size]bool
	for _, pair := range fields {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: pair %q is not two letters",
				ErrInvalidPlugboard, pair)
		}
		a, aok := wiring.Index(rune(pair[0]))
		b, bok := wiring.Index(rune(pair[1]))
		if !aok || !bok {
			return nil, fmt.Errorf("%w: pair %q is not two letters",
				ErrInvalidPlugboard, pair)
		}
		if a == b {
			return nil, fmt.Errorf("%w: pair %q plugs a letter into itself",
				ErrInvalidPlugboard, pair)
		}
		if used[a] || used[b] {
			return nil, fmt.Errorf("%w: pair %q reuses a plugged letter",
				ErrInvalidPlugboard, pair)
		}
		used[a], used[b] = true, true
		p.swap[a], p.swap[b] = byte(b), byte(a)
		p.pairs = append(p.pairs, pair)
	}
	return p, nil
}

// Swap maps an alphabet index through the board.
func (p *Plugboard) Swap(c int) int {
	return int(p.swap[c])
}

// Pairs returns the configured pairs in canonical space-separated form.
func (p *Plugboard) Pairs() string {
	return strings.Join(p.pairs, " ")
}
