package aggsig

import (
	"crypto/sha256"

	"github.com/cosigner-labs/aggschnorr/pkg/curve"
)

// encodeIndex serializes a 0-based signer index as a little-endian
// base-128 sequence: while index > 0, emit the low 7 bits and shift right
// 7. The loop never executes for index 0, so the encoding is empty there.
func encodeIndex(index int) []byte {
	if index == 0 {
		return nil
	}
	var out []byte
	for index > 0 {
		out = append(out, byte(index&0x7f))
		index >>= 7
	}
	return out
}

// computeChallenge is H2: e_i = SHA256(encodeIndex(i) || prehash) mod n.
// It returns ErrChallengeOverflow if the digest, interpreted as a 256-bit
// big-endian integer, is at least the group order — cryptographically
// negligible, but a defined failure rather than a silent reduction.
func computeChallenge(prehash [32]byte, index int) (*curve.Scalar, error) {
	h := sha256.New()
	h.Write(encodeIndex(index))
	h.Write(prehash[:])
	digest := h.Sum(nil)

	var buf [32]byte
	copy(buf[:], digest)

	e, overflow := curve.NewScalar().SetBytes(&buf)
	if overflow {
		return nil, ErrChallengeOverflow
	}
	return e, nil
}
