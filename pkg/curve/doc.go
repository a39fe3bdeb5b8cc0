// Package curve wraps the secp256k1 scalar field and group arithmetic
// used by pkg/aggsig. It does not implement any field or group
// arithmetic itself: Scalar and Point are thin adapters around
// github.com/decred/dcrd/dcrec/secp256k1/v4's ModNScalar, FieldVal and
// JacobianPoint types.
package curve
