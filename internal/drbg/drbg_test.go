package drbg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)

	g1 := New(seed)
	out1 := make([]byte, 64)
	g1.Generate(out1)

	g2 := New(seed)
	out2 := make([]byte, 64)
	g2.Generate(out2)

	require.Equal(t, out1, out2)
}

func TestGenerateDifferentSeedsDiverge(t *testing.T) {
	seedA := bytes.Repeat([]byte{0x01}, 32)
	seedB := bytes.Repeat([]byte{0x02}, 32)

	outA := make([]byte, 32)
	New(seedA).Generate(outA)

	outB := make([]byte, 32)
	New(seedB).Generate(outB)

	require.NotEqual(t, outA, outB)
}

func TestGenerateStreamContinues(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, 32)

	g := New(seed)
	full := make([]byte, 64)
	g.Generate(full)

	g2 := New(seed)
	first := make([]byte, 32)
	g2.Generate(first)
	second := make([]byte, 32)
	g2.Generate(second)

	require.Equal(t, full[:32], first)
	require.Equal(t, full[32:], second)
}

func TestFinalizeZeroesState(t *testing.T) {
	seed := bytes.Repeat([]byte{0x09}, 32)
	g := New(seed)
	g.Finalize()

	for _, b := range g.k {
		require.Equal(t, byte(0), b)
	}
	for _, b := range g.v {
		require.Equal(t, byte(0), b)
	}
}
