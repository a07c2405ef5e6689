package wiring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Identity(t *testing.T) {
	p, err := New(Alphabet)
	require.NoError(t, err)
	for i := 0; i < Size; i++ {
		assert.Equal(t, i, p.Forward(i))
		assert.Equal(t, i, p.Inverse(i))
	}
}

func TestNew_ForwardInverseAreInverses(t *testing.T) {
	p, err := New("EKMFLGDQVZNTOWYHXUSPAIBRCJ") // rotor I wiring
	require.NoError(t, err)
	for i := 0; i < Size; i++ {
		assert.Equal(t, i, p.Inverse(p.Forward(i)), "inverse(forward(%d))", i)
		assert.Equal(t, i, p.Forward(p.Inverse(i)), "forward(inverse(%d))", i)
	}
	// spot checks against the wiring table
	assert.Equal(t, int('E'-'A'), p.Forward(0))
	assert.Equal(t, int('J'-'A'), p.Forward(25))
}

func TestNew_RejectsBadWirings(t *testing.T) {
	cases := []struct {
		name    string
		mapping string
	}{
		{"too short", "ABC"},
		{"too long", Alphabet + "A"},
		{"repeated letter", "AACDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"non-letter", "ABCDEFGHIJKLMNOPQRSTUVWXY1"},
		{"lowercase", "abcdefghijklmnopqrstuvwxyz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.mapping)
			require.ErrorIs(t, err, ErrInvalidWiring)
		})
	}
}

func TestMod(t *testing.T) {
	assert.Equal(t, 0, Mod(0))
	assert.Equal(t, 0, Mod(26))
	assert.Equal(t, 25, Mod(-1))
	assert.Equal(t, 1, Mod(27))
	assert.Equal(t, 25, Mod(-27))
}

func TestIndex(t *testing.T) {
	i, ok := Index('A')
	require.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = Index('z')
	require.True(t, ok)
	assert.Equal(t, 25, i)

	_, ok = Index('1')
	assert.False(t, ok)
	_, ok = Index(' ')
	assert.False(t, ok)
	_, ok = Index('Ü')
	assert.False(t, ok)
}
