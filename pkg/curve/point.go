package curve

import (
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// fieldPrime is the secp256k1 field prime p = 2^256 - 2^32 - 977, used only
// for the quadratic-residue (Jacobi symbol) test on a point's Y coordinate.
var fieldPrime, _ = new(big.Int).SetString(
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)

// ErrNotOnCurve is returned when a byte string does not decode to a valid
// curve point.
var ErrNotOnCurve = errors.New("curve: x coordinate is not on the curve")

// Point is a secp256k1 group element, held internally in Jacobian
// coordinates so that additions avoid a modular inversion.
type Point struct {
	value secp256k1.JacobianPoint
}

// Infinity returns the point at infinity (the group identity).
func Infinity() *Point {
	var p Point
	p.value.X.SetInt(0)
	p.value.Y.SetInt(1)
	p.value.Z.SetInt(0)
	return &p
}

// Generator returns the canonical secp256k1 base point G.
func Generator() *Point {
	var one Scalar
	one.value.SetInt(1)
	return new(Point).ScalarBaseMult(&one)
}

// Set sets p = q and returns p.
func (p *Point) Set(q *Point) *Point {
	p.value.Set(&q.value)
	return p
}

// ScalarBaseMult sets p = k*G, where G is the canonical generator, and
// returns p.
func (p *Point) ScalarBaseMult(k *Scalar) *Point {
	secp256k1.ScalarBaseMultNonConst(&k.value, &p.value)
	return p
}

// ScalarMult sets p = k*q and returns p.
func (p *Point) ScalarMult(q *Point, k *Scalar) *Point {
	var out secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&k.value, &q.value, &out)
	p.value = out
	return p
}

// Add sets p = a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	var out secp256k1.JacobianPoint
	secp256k1.AddNonConst(&a.value, &b.value, &out)
	p.value = out
	return p
}

// Negate sets p = -q and returns p.
func (p *Point) Negate(q *Point) *Point {
	var out secp256k1.JacobianPoint
	out.Set(&q.value)
	out.Y.Negate(1)
	out.Y.Normalize()
	p.value = out
	return p
}

// IsInfinity reports whether p is the point at infinity, i.e. has a zero
// Jacobian Z coordinate. This is checked before any affine conversion,
// since inverting a zero Z is meaningless.
func (p *Point) IsInfinity() bool {
	return p.value.Z.IsZero()
}

// Affine returns the affine X and Y coordinates of p. This converts a
// copy of p's Jacobian representation; it does not cache the result on p.
// The point at infinity has no meaningful affine coordinates; callers
// must check IsInfinity first.
func (p *Point) Affine() (x, y secp256k1.FieldVal) {
	affine := p.value
	affine.ToAffine()
	return affine.X, affine.Y
}

// XBytes returns the big-endian 32-byte encoding of p's affine X coordinate.
func (p *Point) XBytes() [32]byte {
	x, _ := p.Affine()
	return *x.Bytes()
}

// Compressed returns the 33-byte SEC1 compressed encoding of p's affine
// coordinates: a 0x02/0x03 header byte reflecting Y's parity, followed by
// the 32-byte X coordinate.
func (p *Point) Compressed() [33]byte {
	x, y := p.Affine()
	var out [33]byte
	out[0] = byte(y.IsOddBit()) + 2
	xb := x.Bytes()
	copy(out[1:], xb[:])
	return out
}

// Equals reports whether p and q represent the same group element.
func (p *Point) Equals(q *Point) bool {
	ax, ay := p.Affine()
	bx, by := q.Affine()
	return ax.Equals(&bx) && ay.Equals(&by)
}

// HasQuadResidueY reports whether p's affine Y coordinate is a quadratic
// residue modulo the field prime, using the Jacobi symbol. This is the QR
// convention used to normalize aggregate nonces, distinct from (and not
// compatible with) BIP-340's even-Y convention.
func (p *Point) HasQuadResidueY() bool {
	_, y := p.Affine()
	yBytes := y.Bytes()
	yInt := new(big.Int).SetBytes(yBytes[:])
	return big.Jacobi(yInt, fieldPrime) == 1
}

// SetFromPublicKey sets p from a parsed secp256k1 public key and returns p.
func (p *Point) SetFromPublicKey(pub *secp256k1.PublicKey) *Point {
	pub.AsJacobian(&p.value)
	return p
}
