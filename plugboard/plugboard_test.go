package plugboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)
	for c := 0; c < 26; c++ {
		assert.Equal(t, c, p.Swap(c))
	}
	assert.Equal(t, "", p.Pairs())
}

func TestNew_SwapIsInvolutive(t *testing.T) {
	p, err := New("AB CD EF GH")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Swap(0))
	assert.Equal(t, 0, p.Swap(1))
	assert.Equal(t, 3, p.Swap(2))
	// unplugged letters pass through
	assert.Equal(t, 25, p.Swap(25))
	for c := 0; c < 26; c++ {
		assert.Equal(t, c, p.Swap(p.Swap(c)))
	}
}

func TestNew_FoldsCase(t *testing.T) {
	p, err := New("ab cd")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Swap(0))
	assert.Equal(t, "AB CD", p.Pairs())
}

func TestNew_TenPairsAccepted(t *testing.T) {
	// all twenty letters distinct, exactly the ten cables that shipped
	p, err := New("AB CD EF GH IJ KL MN OP QR ST")
	require.NoError(t, err)
	assert.Equal(t, int('T'-'A'), p.Swap(int('S'-'A')))
}

func TestNew_Rejections(t *testing.T) {
	cases := []struct {
		name string
		spec string
	}{
		{"eleven pairs", "AB CD EF GH IJ KL MN OP QR ST UV"},
		{"reused letter", "AB BC"},
		{"self pair", "AA"},
		{"one letter token", "A"},
		{"three letter token", "ABC"},
		{"digit in pair", "A1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.spec)
			require.ErrorIs(t, err, ErrInvalidPlugboard)
		})
	}
}
