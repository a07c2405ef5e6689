package machine_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigma-m3/enigma/machine"
)

func TestSettings_CodebookRoundTrip(t *testing.T) {
	s := machine.Settings{
		Reflector: "B",
		Rotors:    []string{"IV", "V", "VI"},
		Rings:     []int{10, 5, 12},
		Position:  "WXY",
		Plugboard: "AE BF CM DQ HU JN LX PR SZ VW",
	}
	line := s.String()
	assert.Equal(t, "B;IV,V,VI;10,5,12;WXY;AE BF CM DQ HU JN LX PR SZ VW", line)

	parsed, err := machine.ParseSettings(line)
	require.NoError(t, err)
	assert.Equal(t, s, parsed)
}

func TestParseSettings_PlugboardFieldOptional(t *testing.T) {
	s, err := machine.ParseSettings("C;I,II,III;1,2,3;QEV")
	require.NoError(t, err)
	assert.Equal(t, "C", s.Reflector)
	assert.Equal(t, "", s.Plugboard)

	_, err = machine.New(s)
	require.NoError(t, err)
}

func TestParseSettings_FoldsCaseAndSpace(t *testing.T) {
	s, err := machine.ParseSettings("  B; I, II, III ;1,1,1; aaa ;ab cd\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "II", "III"}, s.Rotors)
	assert.Equal(t, "AAA", s.Position)
	assert.Equal(t, "AB CD", s.Plugboard)
}

func TestParseSettings_Errors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"too few fields", "B;I,II,III;1,1,1"},
		{"too many fields", "B;I,II,III;1,1,1;AAA;AB;extra"},
		{"ring not a number", "B;I,II,III;one,1,1;AAA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := machine.ParseSettings(tc.line)
			require.ErrorIs(t, err, machine.ErrInvalidSettings)
		})
	}
}

func TestSettings_CanonicalizedByMachine(t *testing.T) {
	m := newMachine(t, machine.Settings{
		Reflector: "B",
		Rotors:    []string{"I", "II", "III"},
		Rings:     []int{1, 1, 1},
		Position:  "abc",
		Plugboard: "ab cd",
	})
	s := m.Settings()
	assert.Equal(t, "ABC", s.Position)
	assert.Equal(t, "AB CD", s.Plugboard)
}

func TestSummary_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)

	steckered := newMachine(t, machine.Settings{
		Reflector: "B",
		Rotors:    []string{"I", "II", "III"},
		Rings:     []int{1, 1, 1},
		Position:  "AAA",
		Plugboard: "AB CD EF GH",
	})
	g.Assert(t, "summary_steckered", []byte(steckered.Summary()))

	unsteckered := newMachine(t, machine.Settings{
		Reflector: "C-Thin",
		Rotors:    []string{"VI", "VII", "VIII"},
		Rings:     []int{1, 2, 3},
		Position:  "QEV",
	})
	g.Assert(t, "summary_unsteckered", []byte(unsteckered.Summary()))
}
