package machine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidSettings reports a daily key that fails shape or range
	// validation before any machine part is built.
	ErrInvalidSettings = errors.New("invalid machine settings")
	// ErrRotorSelection reports a duplicate rotor identity across the
	// three slots.
	ErrRotorSelection = errors.New("invalid rotor selection")
)

// Settings is the daily key: everything needed to reconstruct a machine and
// therefore to decrypt what it encrypted.
type Settings struct {
	// Reflector is a catalog name: A, B, C, B-Thin or C-Thin.
	Reflector string `validate:"required"`
	// Rotors are three distinct catalog names ordered left, middle, right.
	Rotors []string `validate:"len=3,dive,required"`
	// Rings are the ring settings (Ringstellung), one per rotor, 1..26.
	Rings []int `validate:"len=3,dive,min=1,max=26"`
	// Position is the three-letter start position (Grundstellung),
	// ordered left, middle, right.
	Position string `validate:"len=3"`
	// Plugboard is a space-separated list of letter pairs, e.g. "AB CD".
	Plugboard string
}

var validate = validator.New()

// Validate runs the declarative shape and range checks on the settings.
// Domain checks (catalog membership, distinct rotors, plugboard rules)
// happen when the parts are constructed.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// String renders the settings as a single codebook line:
//
//	reflector;rotor-L,rotor-M,rotor-R;ring-L,ring-M,ring-R;pos;pairs
//
// The line round-trips through ParseSettings.
func (s Settings) String() string {
	rings := make([]string, len(s.Rings))
	for i, r := range s.Rings {
		rings[i] = strconv.Itoa(r)
	}
	return strings.Join([]string{
		s.Reflector,
		strings.Join(s.Rotors, ","),
		strings.Join(rings, ","),
		strings.ToUpper(s.Position),
		strings.ToUpper(s.Plugboard),
	}, ";")
}

// ParseSettings parses a codebook line produced by Settings.String.  The
// plugboard field may be omitted for an unsteckered machine.
func ParseSettings(line string) (Settings, error) {
	var s Settings
	fields := strings.Split(strings.TrimSpace(line), ";")
	if len(fields) < 4 || len(fields) > 5 {
		return s, fmt.Errorf("%w: codebook line %q has %d fields, want 4 or 5",
			ErrInvalidSettings, line, len(fields))
	}
	s.Reflector = strings.TrimSpace(fields[0])
	for _, name := range strings.Split(fields[1], ",") {
		s.Rotors = append(s.Rotors, strings.TrimSpace(name))
	}
	for _, txt := range strings.Split(fields[2], ",") {
		ring, err := strconv.Atoi(strings.TrimSpace(txt))
		if err != nil {
			return s, fmt.Errorf("%w: codebook ring setting %q",
				ErrInvalidSettings, txt)
		}
		s.Rings = append(s.Rings, ring)
	}
	s.Position = strings.ToUpper(strings.TrimSpace(fields[3]))
	if len(fields) == 5 {
		s.Plugboard = strings.ToUpper(strings.TrimSpace(fields[4]))
	}
	return s, nil
}
