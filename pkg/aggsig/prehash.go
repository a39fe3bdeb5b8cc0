package aggsig

import (
	"crypto/sha256"

	"github.com/cosigner-labs/aggschnorr/pkg/curve"
)

// computePrehash is H1: SHA-256 over every pubkey in list order (33-byte
// compressed form), then the 33-byte compressed aggregate nonce R (with
// the QR-Y convention already applied by the caller), then the 32-byte
// message.
func computePrehash(pubKeys []*PublicKey, r *curve.Point, msg32 *[32]byte) [32]byte {
	h := sha256.New()
	for _, pk := range pubKeys {
		c := pk.Compressed()
		h.Write(c[:])
	}
	rc := r.Compressed()
	h.Write(rc[:])
	h.Write(msg32[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
