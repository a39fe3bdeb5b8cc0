package curve

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Scalar is an element of the secp256k1 scalar field, i.e. an integer
// mod the group order n.
type Scalar struct {
	value secp256k1.ModNScalar
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// SetBytes interprets buf as a big-endian 32-byte integer and reduces it
// mod n. The returned bool is true if the value overflowed the field and
// was reduced, matching the decred convention.
func (s *Scalar) SetBytes(buf *[32]byte) (*Scalar, bool) {
	overflow := s.value.SetBytes(buf) != 0
	return s, overflow
}

// Bytes returns the canonical big-endian 32-byte encoding of s.
func (s *Scalar) Bytes() [32]byte {
	return s.value.Bytes()
}

// Set sets s = t and returns s.
func (s *Scalar) Set(t *Scalar) *Scalar {
	s.value.Set(&t.value)
	return s
}

// Zero sets s to the additive identity.
func (s *Scalar) Zero() {
	s.value.Zero()
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.value.IsZero()
}

// Equals reports whether s and t represent the same field element.
func (s *Scalar) Equals(t *Scalar) bool {
	return s.value.Equals(&t.value)
}

// Add sets s = a + b mod n and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	var sum secp256k1.ModNScalar
	sum.Set(&a.value)
	sum.Add(&b.value)
	s.value = sum
	return s
}

// Mul sets s = a * b mod n and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	var prod secp256k1.ModNScalar
	prod.Set(&a.value)
	prod.Mul(&b.value)
	s.value = prod
	return s
}

// MulAdd sets s = a*b + c mod n and returns s.
func (s *Scalar) MulAdd(a, b, c *Scalar) *Scalar {
	var prod secp256k1.ModNScalar
	prod.Set(&a.value)
	prod.Mul(&b.value)
	prod.Add(&c.value)
	s.value = prod
	return s
}

// Negate sets s = -s mod n and returns s.
func (s *Scalar) Negate() *Scalar {
	s.value.Negate()
	return s
}
