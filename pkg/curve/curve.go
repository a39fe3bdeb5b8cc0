package curve

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrXCoordinateOutOfRange is returned when a serialized X coordinate is
// not less than the field prime.
var ErrXCoordinateOutOfRange = errors.New("curve: x coordinate out of range")

// PointFromXQuadResidue reconstructs a Point from a 32-byte X coordinate,
// choosing whichever of the two candidate Y coordinates is a quadratic
// residue mod the field prime. This is the inverse of the convention
// Point.HasQuadResidueY normalizes points to: it never fails due to Y's
// parity, only when x itself is out of range or not on the curve.
func PointFromXQuadResidue(x *[32]byte) (*Point, error) {
	var fx secp256k1.FieldVal
	if overflow := fx.SetByteSlice(x[:]); overflow {
		return nil, ErrXCoordinateOutOfRange
	}

	var yOdd, yEven secp256k1.FieldVal
	if !secp256k1.DecompressY(&fx, true, &yOdd) {
		return nil, ErrNotOnCurve
	}
	secp256k1.DecompressY(&fx, false, &yEven)

	var p Point
	p.value.X = fx
	p.value.Z.SetInt(1)

	p.value.Y = yOdd
	if p.HasQuadResidueY() {
		return &p, nil
	}
	p.value.Y = yEven
	return &p, nil
}
