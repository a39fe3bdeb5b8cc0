package aggsig

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/cosigner-labs/aggschnorr/pkg/curve"
)

// Progress tracks how far a session has advanced for one signer index.
type Progress int

const (
	// ProgressUnknown is the initial state: no nonce has been contributed
	// for this index.
	ProgressUnknown Progress = iota
	// ProgressOther is reserved for externally-supplied public nonces.
	// No operation in this package ever sets it; it is kept only so the
	// state machine's "nonce known but not ours to sign" precondition has
	// a name to check against, matching the reference implementation.
	ProgressOther
	// ProgressOurs means a nonce has been generated for this index and is
	// ready to be consumed by PartialSign.
	ProgressOurs
	// ProgressSigned means PartialSign has already consumed this index's
	// nonce; it must never be reused.
	ProgressSigned
)

func (p Progress) String() string {
	switch p {
	case ProgressUnknown:
		return "unknown"
	case ProgressOther:
		return "other"
	case ProgressOurs:
		return "ours"
	case ProgressSigned:
		return "signed"
	default:
		return fmt.Sprintf("Progress(%d)", int(p))
	}
}

// PublicKey is an opaque handle around a secp256k1 public key.
type PublicKey struct {
	key *secp256k1.PublicKey
}

// ParsePublicKey parses a 33-byte compressed SEC1 public key.
func ParsePublicKey(compressed *[CompressedPubKeySize]byte) (*PublicKey, error) {
	key, err := secp256k1.ParsePubKey(compressed[:])
	if err != nil {
		return nil, fmt.Errorf("aggsig: parse public key: %w", err)
	}
	return &PublicKey{key: key}, nil
}

// NewPublicKeyFromPoint wraps a curve point as a PublicKey. The point must
// not be the point at infinity.
func NewPublicKeyFromPoint(p *curve.Point) *PublicKey {
	x, y := p.Affine()
	key := secp256k1.NewPublicKey(&x, &y)
	return &PublicKey{key: key}
}

// Compressed returns the 33-byte compressed SEC1 encoding of k.
func (k *PublicKey) Compressed() [CompressedPubKeySize]byte {
	var out [CompressedPubKeySize]byte
	copy(out[:], k.key.SerializeCompressed())
	return out
}

// point returns the curve point underlying k.
func (k *PublicKey) point() *curve.Point {
	return new(curve.Point).SetFromPublicKey(k.key)
}

// PartialSignature is one signer's scalar contribution s_i.
type PartialSignature [ScalarSize]byte

// Signature is an aggregate signature: s (32 bytes) concatenated with R.x
// (32 bytes).
type Signature [SignatureSize]byte
