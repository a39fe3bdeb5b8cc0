package aggsig

import "github.com/cosigner-labs/aggschnorr/pkg/curve"

// GenerateNonce draws a fresh secret nonce for index i from the session's
// deterministic RNG, QR-normalizes it, and folds the corresponding public
// nonce into the running aggregate. It fails without mutating state if
// progress[i] is not ProgressUnknown.
func (s *Session) GenerateNonce(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return ErrSessionDestroyed
	}
	if i < 0 || i >= len(s.progress) {
		return ErrIndexOutOfRange
	}
	if s.progress[i] != ProgressUnknown {
		return ErrWrongState
	}

	k, err := s.sampleNonce()
	if err != nil {
		return err
	}

	K := new(curve.Point).ScalarBaseMult(k)
	if !K.HasQuadResidueY() {
		k.Negate()
		K.Negate(K)
	}

	s.pubNonceSum.Add(&s.pubNonceSum, K)
	s.secNonce[i] = *k
	s.progress[i] = ProgressOurs

	return nil
}

// sampleNonce pulls 32 bytes from the session RNG and interprets them as a
// scalar, retrying on overflow or zero. Both are cryptographically
// unreachable in practice but are handled as specified.
func (s *Session) sampleNonce() (*curve.Scalar, error) {
	var buf [32]byte
	defer zeroizeBytes(buf[:])

	for attempt := 0; attempt < maxNonceIterations; attempt++ {
		s.rng.Generate(buf[:])
		k, overflow := curve.NewScalar().SetBytes(&buf)
		if overflow || k.IsZero() {
			continue
		}
		return k, nil
	}
	return nil, ErrNonceGeneration
}
