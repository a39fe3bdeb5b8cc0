package aggsig

import "github.com/cosigner-labs/aggschnorr/pkg/curve"

// PartialSign computes signer i's contribution s_i = e_i*x_i + k_i and
// writes it to out. It requires that every index has a nonce contributed
// (progress[j] != ProgressUnknown for all j) and that progress[i] is
// exactly ProgressOurs; either violation fails without mutating state.
func (s *Session) PartialSign(out *PartialSignature, msg32 *[32]byte, secKey32 *[32]byte, i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return ErrSessionDestroyed
	}
	if out == nil || msg32 == nil || secKey32 == nil {
		return ErrNilArgument
	}
	if i < 0 || i >= len(s.progress) {
		return ErrIndexOutOfRange
	}
	for _, p := range s.progress {
		if p == ProgressUnknown {
			return ErrWrongState
		}
	}
	if s.progress[i] != ProgressOurs {
		return ErrWrongState
	}

	// Local copies: QR-negation here must not mutate the session's
	// persistent pubNonceSum or the signer's stored secnonce, since other
	// signers derive the same negation independently from their own copy
	// of R.
	var r curve.Point
	r.Set(&s.pubNonceSum)
	localNonce := s.secNonce[i]

	if !r.HasQuadResidueY() {
		localNonce.Negate()
		r.Negate(&r)
	}

	prehash := computePrehash(s.pubKeys, &r, msg32)
	e, err := computeChallenge(prehash, i)
	if err != nil {
		return err
	}

	x, overflow := curve.NewScalar().SetBytes(secKey32)
	if overflow {
		zeroizeScalar(x)
		return ErrScalarOverflow
	}

	si := new(curve.Scalar).MulAdd(e, x, &localNonce)
	siBytes := si.Bytes()
	copy(out[:], siBytes[:])

	zeroizeScalar(si)
	zeroizeScalar(x)
	zeroizeScalar(&localNonce)

	s.progress[i] = ProgressSigned

	return nil
}
