package aggsig

import "github.com/cosigner-labs/aggschnorr/pkg/curve"

// Verify reports whether sig is a valid aggregate signature over msg32
// for the ordered list pubKeys. It is stateless: no Session is involved.
// Failure is a boolean; Verify never distinguishes why a signature is
// invalid.
func Verify(sig *Signature, msg32 *[32]byte, pubKeys []*PublicKey) bool {
	if sig == nil || msg32 == nil || len(pubKeys) == 0 {
		return false
	}

	var sBytes [32]byte
	copy(sBytes[:], sig[:32])
	s, overflow := curve.NewScalar().SetBytes(&sBytes)
	if overflow {
		return false
	}

	var rxBytes [32]byte
	copy(rxBytes[:], sig[32:])
	r, err := curve.PointFromXQuadResidue(&rxBytes)
	if err != nil {
		return false
	}

	prehash := computePrehash(pubKeys, r, msg32)

	// acc accumulates s*G - Σ e_i*P_i - R in bounded-width chunks, slot 0
	// of the first chunk reserved for (s, G).
	acc := new(curve.Point).ScalarBaseMult(s)

	for start := 0; start < len(pubKeys); {
		end := start + verifyBatchWidth
		if start == 0 {
			end--
		}
		if end > len(pubKeys) {
			end = len(pubKeys)
		}
		for i := start; i < end; i++ {
			e, err := computeChallenge(prehash, i)
			if err != nil {
				return false
			}
			negE := new(curve.Scalar).Set(e).Negate()
			term := new(curve.Point).ScalarMult(pubKeys[i].point(), negE)
			acc.Add(acc, term)
		}
		start = end
	}

	negR := new(curve.Point).Negate(r)
	acc.Add(acc, negR)

	return acc.IsInfinity()
}
