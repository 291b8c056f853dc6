package eht

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDualHash_Deterministic(t *testing.T) {
	key := []byte("determinism-key")

	h1a, h2a := dualHash(key, 3, 0)
	h1b, h2b := dualHash(key, 3, 0)

	require.Equal(t, h1a, h1b)
	require.Equal(t, h2a, h2b)
}

func TestDualHash_VariesByLevel(t *testing.T) {
	key := []byte("same-key")

	h1l0, h2l0 := dualHash(key, 0, 0)
	h1l1, h2l1 := dualHash(key, 1, 0)

	assert.NotEqual(t, h1l0, h1l1)
	assert.NotEqual(t, h2l0, h2l1)
}

func TestDualHash_H2IsOdd(t *testing.T) {
	for level := 0; level < 8; level++ {
		_, h2 := dualHash([]byte("k"), level, 0)
		assert.Equal(t, uint64(1), h2&1, "h2 must be odd for level %d", level)
	}
}

func TestDualHash_SeedChangesOutput(t *testing.T) {
	key := []byte("seeded")

	h1a, h2a := dualHash(key, 0, 0)
	h1b, h2b := dualHash(key, 0, 0xDEADBEEF)

	assert.NotEqual(t, h1a, h1b)
	assert.NotEqual(t, h2a, h2b)
}

func TestProbeSlot_WithinCapacity(t *testing.T) {
	h1, h2 := dualHash([]byte("probe-key"), 0, 0)
	for a := 0; a < 50; a++ {
		pos := probeSlot(h1, h2, a, 17)
		require.GreaterOrEqual(t, pos, 0)
		require.Less(t, pos, 17)
	}
}

func TestTruncateAtNUL(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"no NUL", []byte("hello"), []byte("hello")},
		{"embedded NUL", []byte("he\x00llo"), []byte("he")},
		{"leading NUL", []byte("\x00hello"), []byte{}},
		{"empty", []byte{}, []byte{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, truncateAtNUL(tc.in))
		})
	}
}
