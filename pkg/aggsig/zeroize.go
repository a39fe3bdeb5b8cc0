package aggsig

import (
	"runtime"

	"github.com/cosigner-labs/aggschnorr/pkg/curve"
)

// zeroizeBytes overwrites buf with zeros and uses runtime.KeepAlive to
// deter the compiler from eliding the stores as dead code.
func zeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// zeroizeScalar overwrites s with the additive identity.
func zeroizeScalar(s *curve.Scalar) {
	s.Zero()
	runtime.KeepAlive(s)
}
