// Package drbg implements the HMAC-SHA256 deterministic byte generator
// from RFC 6979 §3.2 steps a-g (minus the bit-to-int recovery step,
// which callers in pkg/aggsig do themselves). It is used to derive a
// session's per-signer nonces from a single seed, so that a session's
// nonce sequence is reproducible from the seed alone.
package drbg

import (
	"crypto/hmac"
	"crypto/sha256"
)

const outputSize = sha256.Size

// Generator is an RFC 6979 HMAC-SHA256 byte generator. A Generator
// produces an unbounded deterministic byte stream from a seed; it is not
// safe for concurrent use.
type Generator struct {
	k []byte
	v []byte
}

// New seeds a Generator from seed, following RFC 6979 §3.2 steps b-g with
// no additional "message" input (the seed is expected to already be a
// session-unique 32-byte value).
func New(seed []byte) *Generator {
	g := &Generator{
		k: make([]byte, outputSize),
		v: make([]byte, outputSize),
	}
	for i := range g.v {
		g.v[i] = 0x01
	}
	for i := range g.k {
		g.k[i] = 0x00
	}

	g.k = hmacSum(g.k, append(append(append([]byte{}, g.v...), 0x00), seed...))
	g.v = hmacSum(g.k, g.v)
	g.k = hmacSum(g.k, append(append(append([]byte{}, g.v...), 0x01), seed...))
	g.v = hmacSum(g.k, g.v)

	return g
}

// Generate fills buf with the next len(buf) bytes of the deterministic
// stream, following RFC 6979 §3.2 step h's generation loop.
func (g *Generator) Generate(buf []byte) {
	for filled := 0; filled < len(buf); {
		g.v = hmacSum(g.k, g.v)
		filled += copy(buf[filled:], g.v)
	}
	g.k = hmacSum(g.k, append(append([]byte{}, g.v...), 0x00))
	g.v = hmacSum(g.k, g.v)
}

// Finalize overwrites the generator's internal state with zeros. After
// Finalize, the Generator must not be used again.
func (g *Generator) Finalize() {
	for i := range g.k {
		g.k[i] = 0
	}
	for i := range g.v {
		g.v[i] = 0
	}
}

func hmacSum(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}
