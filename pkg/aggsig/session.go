package aggsig

import (
	"sync"

	"github.com/cosigner-labs/aggschnorr/internal/drbg"
	"github.com/cosigner-labs/aggschnorr/pkg/curve"
)

// Session holds the mutable state for one signing attempt over a fixed,
// ordered list of public keys. A Session is not safe for concurrent use:
// the caller must serialize generate_nonce and partial_sign calls on the
// same session itself. The mutex below only guards against concurrent
// calls corrupting memory; it does not make concurrent use meaningful.
type Session struct {
	mu sync.Mutex

	pubKeys     []*PublicKey
	secNonce    []curve.Scalar
	progress    []Progress
	pubNonceSum curve.Point
	rng         *drbg.Generator

	destroyed bool
}

// NewSession creates a session for a fixed ordered list of public keys and
// a 32-byte seed. The pubkey list and seed are copied in; the caller
// retains no aliasing into the session's internal state.
func NewSession(pubKeys []*PublicKey, seed *[SeedSize]byte) (*Session, error) {
	if pubKeys == nil || seed == nil {
		return nil, ErrNilArgument
	}
	n := len(pubKeys)
	if n < 1 {
		return nil, ErrInvalidKeyCount
	}
	for _, pk := range pubKeys {
		if pk == nil {
			return nil, ErrNilArgument
		}
	}

	copiedKeys := make([]*PublicKey, n)
	copy(copiedKeys, pubKeys)

	s := &Session{
		pubKeys:  copiedKeys,
		secNonce: make([]curve.Scalar, n),
		progress: make([]Progress, n),
	}
	s.pubNonceSum.Set(curve.Infinity())

	seedCopy := *seed
	s.rng = drbg.New(seedCopy[:])
	zeroizeBytes(seedCopy[:])

	return s, nil
}

// Size returns the number of participants n the session was created with.
func (s *Session) Size() int {
	return len(s.pubKeys)
}

// Progress returns the current progress value for index i.
func (s *Session) Progress(i int) (Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return ProgressUnknown, ErrSessionDestroyed
	}
	if i < 0 || i >= len(s.progress) {
		return ProgressUnknown, ErrIndexOutOfRange
	}
	return s.progress[i], nil
}

// Destroy zeroizes the session's secret and public state and finalizes its
// RNG. It is idempotent: calling Destroy on an already-destroyed session
// is a no-op.
func (s *Session) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}

	for i := range s.secNonce {
		zeroizeScalar(&s.secNonce[i])
	}
	for i := range s.progress {
		s.progress[i] = ProgressUnknown
	}
	for i := range s.pubKeys {
		s.pubKeys[i] = nil
	}
	s.rng.Finalize()

	s.destroyed = true
}
