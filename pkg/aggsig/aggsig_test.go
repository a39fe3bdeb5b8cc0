package aggsig

import (
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosigner-labs/aggschnorr/pkg/curve"
)

// keypair is a secret scalar and its corresponding public key, generated
// for test fixtures.
type keypair struct {
	secret [32]byte
	public *PublicKey
}

func newKeypair(t *testing.T) keypair {
	t.Helper()
	for {
		var secretBytes [32]byte
		_, err := rand.Read(secretBytes[:])
		require.NoError(t, err)

		x, overflow := curve.NewScalar().SetBytes(&secretBytes)
		if overflow || x.IsZero() {
			continue
		}
		point := new(curve.Point).ScalarBaseMult(x)
		return keypair{secret: secretBytes, public: NewPublicKeyFromPoint(point)}
	}
}

func newKeypairs(t *testing.T, n int) []keypair {
	t.Helper()
	out := make([]keypair, n)
	for i := range out {
		out[i] = newKeypair(t)
	}
	return out
}

func publicKeysOf(keys []keypair) []*PublicKey {
	out := make([]*PublicKey, len(keys))
	for i, k := range keys {
		out[i] = k.public
	}
	return out
}

func fullSign(t *testing.T, keys []keypair, seed [32]byte, msg [32]byte) *Signature {
	t.Helper()
	session, err := NewSession(publicKeysOf(keys), &seed)
	require.NoError(t, err)
	defer session.Destroy()

	for i := range keys {
		require.NoError(t, session.GenerateNonce(i))
	}

	partials := make([]PartialSignature, len(keys))
	for i, kp := range keys {
		secret := kp.secret
		require.NoError(t, session.PartialSign(&partials[i], &msg, &secret, i))
	}

	sig, err := session.Combine(partials)
	require.NoError(t, err)
	return sig
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 16} {
		keys := newKeypairs(t, n)
		var seed, msg [32]byte
		_, err := rand.Read(seed[:])
		require.NoError(t, err)
		_, err = rand.Read(msg[:])
		require.NoError(t, err)

		sig := fullSign(t, keys, seed, msg)
		require.True(t, Verify(sig, &msg, publicKeysOf(keys)))
	}
}

func TestRejectsWrongMessage(t *testing.T) {
	keys := newKeypairs(t, 3)
	var seed, msg, otherMsg [32]byte
	rand.Read(seed[:])
	rand.Read(msg[:])
	rand.Read(otherMsg[:])

	sig := fullSign(t, keys, seed, msg)
	require.False(t, Verify(sig, &otherMsg, publicKeysOf(keys)))
}

func TestRejectsWrongKeyList(t *testing.T) {
	keys := newKeypairs(t, 3)
	var seed, msg [32]byte
	rand.Read(seed[:])
	rand.Read(msg[:])

	sig := fullSign(t, keys, seed, msg)

	reordered := publicKeysOf(keys)
	reordered[0], reordered[1] = reordered[1], reordered[0]
	require.False(t, Verify(sig, &msg, reordered))

	extra := newKeypair(t)
	withExtra := append(publicKeysOf(keys), extra.public)
	require.False(t, Verify(sig, &msg, withExtra))

	other := newKeypairs(t, 3)
	require.False(t, Verify(sig, &msg, publicKeysOf(other)))
}

func TestRejectsTamperedSignature(t *testing.T) {
	keys := newKeypairs(t, 2)
	var seed, msg [32]byte
	rand.Read(seed[:])
	rand.Read(msg[:])

	sig := fullSign(t, keys, seed, msg)

	for byteIdx := 0; byteIdx < SignatureSize; byteIdx++ {
		for bit := 0; bit < 8; bit++ {
			tampered := *sig
			tampered[byteIdx] ^= 1 << uint(bit)
			require.False(t, Verify(&tampered, &msg, publicKeysOf(keys)),
				"byte %d bit %d should invalidate the signature", byteIdx, bit)
		}
	}
}

func TestNonceReusePrevention(t *testing.T) {
	keys := newKeypairs(t, 2)
	var seed, msg [32]byte
	rand.Read(seed[:])
	rand.Read(msg[:])

	session, err := NewSession(publicKeysOf(keys), &seed)
	require.NoError(t, err)
	defer session.Destroy()

	require.NoError(t, session.GenerateNonce(0))
	require.ErrorIs(t, session.GenerateNonce(0), ErrWrongState)

	var partial PartialSignature
	secret0 := keys[0].secret
	require.ErrorIs(t, session.PartialSign(&partial, &msg, &secret0, 0), ErrWrongState)

	require.NoError(t, session.GenerateNonce(1))
	require.NoError(t, session.PartialSign(&partial, &msg, &secret0, 0))
	require.ErrorIs(t, session.PartialSign(&partial, &msg, &secret0, 0), ErrWrongState)
}

func TestDeterminismOfSigning(t *testing.T) {
	keys := newKeypairs(t, 3)
	var seed, msg [32]byte
	rand.Read(seed[:])
	rand.Read(msg[:])

	sigA := fullSign(t, keys, seed, msg)
	sigB := fullSign(t, keys, seed, msg)
	require.Equal(t, sigA, sigB)
}

func TestSessionIndependence(t *testing.T) {
	keys := newKeypairs(t, 3)
	var seedA, seedB, msg [32]byte
	rand.Read(seedA[:])
	rand.Read(seedB[:])
	rand.Read(msg[:])
	for seedA == seedB {
		rand.Read(seedB[:])
	}

	sigA := fullSign(t, keys, seedA, msg)
	sigB := fullSign(t, keys, seedB, msg)
	require.NotEqual(t, sigA, sigB)
}

func TestChallengeHashIndexZeroIsPlainSHA256(t *testing.T) {
	require.Empty(t, encodeIndex(0))

	var prehash [32]byte
	prehash[0] = 0x01
	e, err := computeChallenge(prehash, 0)
	require.NoError(t, err)
	require.Equal(t, sha256.Sum256(prehash[:]), e.Bytes())
}

func TestQRConventionReconstructsResidueY(t *testing.T) {
	keys := newKeypairs(t, 2)
	var seed, msg [32]byte
	rand.Read(seed[:])
	rand.Read(msg[:])

	sig := fullSign(t, keys, seed, msg)

	// Reconstructing R from sig's X coordinate must pick the QR branch;
	// flipping s alone (leaving R.x untouched) should still fail since the
	// verification equation no longer balances, exercising the QR
	// reconstruction path end-to-end via TestRejectsTamperedSignature.
	// Here we confirm the reconstructed R used internally has QR Y.
	var rx [32]byte
	copy(rx[:], sig[32:])
	r, err := curve.PointFromXQuadResidue(&rx)
	require.NoError(t, err)
	require.True(t, r.HasQuadResidueY())
}

// S3: partial_sign before all nonces are generated fails; once the last
// nonce is generated, a previously-blocked partial_sign succeeds.
func TestStateMachineOrdering(t *testing.T) {
	keys := newKeypairs(t, 2)
	var seed, msg [32]byte
	rand.Read(seed[:])
	rand.Read(msg[:])

	session, err := NewSession(publicKeysOf(keys), &seed)
	require.NoError(t, err)
	defer session.Destroy()

	require.NoError(t, session.GenerateNonce(0))

	var partial PartialSignature
	secret0 := keys[0].secret
	require.ErrorIs(t, session.PartialSign(&partial, &msg, &secret0, 0), ErrWrongState)

	require.NoError(t, session.GenerateNonce(1))
	require.NoError(t, session.PartialSign(&partial, &msg, &secret0, 0))
}

// S5: a secret key that overflows the scalar field fails PartialSign and
// leaves progress unchanged.
func TestBadSecretKeyLeavesStateUnchanged(t *testing.T) {
	keys := newKeypairs(t, 2)
	var seed, msg [32]byte
	rand.Read(seed[:])
	rand.Read(msg[:])

	session, err := NewSession(publicKeysOf(keys), &seed)
	require.NoError(t, err)
	defer session.Destroy()

	require.NoError(t, session.GenerateNonce(0))
	require.NoError(t, session.GenerateNonce(1))

	var allOnes [32]byte
	for i := range allOnes {
		allOnes[i] = 0xff
	}

	var partial PartialSignature
	err = session.PartialSign(&partial, &msg, &allOnes, 0)
	require.ErrorIs(t, err, ErrScalarOverflow)

	progress, err := session.Progress(0)
	require.NoError(t, err)
	require.Equal(t, ProgressOurs, progress)
}

// S6: n large enough to force verify across multiple batch-width chunks.
func TestVerifySpansMultipleBatches(t *testing.T) {
	n := 2*verifyBatchWidth + 1
	keys := newKeypairs(t, n)
	var seed, msg [32]byte
	rand.Read(seed[:])
	rand.Read(msg[:])

	sig := fullSign(t, keys, seed, msg)
	require.True(t, Verify(sig, &msg, publicKeysOf(keys)))
}

func TestCombineCountMismatch(t *testing.T) {
	keys := newKeypairs(t, 3)
	var seed [32]byte
	rand.Read(seed[:])

	session, err := NewSession(publicKeysOf(keys), &seed)
	require.NoError(t, err)
	defer session.Destroy()

	for i := range keys {
		require.NoError(t, session.GenerateNonce(i))
	}
	_, err = session.Combine(make([]PartialSignature, 2))
	require.ErrorIs(t, err, ErrCountMismatch)
}

func TestDestroyIsIdempotentAndZeroizes(t *testing.T) {
	keys := newKeypairs(t, 2)
	var seed [32]byte
	rand.Read(seed[:])

	session, err := NewSession(publicKeysOf(keys), &seed)
	require.NoError(t, err)
	require.NoError(t, session.GenerateNonce(0))

	session.Destroy()
	session.Destroy()

	require.True(t, session.secNonce[0].IsZero())
	_, err = session.Progress(0)
	require.ErrorIs(t, err, ErrSessionDestroyed)
}
