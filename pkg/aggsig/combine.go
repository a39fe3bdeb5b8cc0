package aggsig

import "github.com/cosigner-labs/aggschnorr/pkg/curve"

// Combine sums the partial signatures into the final scalar, normalizes
// the session's aggregate nonce to QR-Y if it isn't already, and emits
// the 64-byte signature s ‖ R.x. partials must have exactly as many
// entries as the session has participants.
func (s *Session) Combine(partials []PartialSignature) (*Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return nil, ErrSessionDestroyed
	}
	if len(partials) != len(s.pubKeys) {
		return nil, ErrCountMismatch
	}

	total := curve.NewScalar()
	for _, partial := range partials {
		buf := [32]byte(partial)
		sc, overflow := curve.NewScalar().SetBytes(&buf)
		if overflow {
			return nil, ErrScalarOverflow
		}
		total.Add(total, sc)
	}

	if !s.pubNonceSum.HasQuadResidueY() {
		s.pubNonceSum.Negate(&s.pubNonceSum)
	}

	var sig Signature
	sBytes := total.Bytes()
	rx := s.pubNonceSum.XBytes()
	copy(sig[:32], sBytes[:])
	copy(sig[32:], rx[:])

	return &sig, nil
}
