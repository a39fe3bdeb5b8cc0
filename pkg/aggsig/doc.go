// Package aggsig implements n-of-n aggregate Schnorr signatures over
// secp256k1: a fixed ordered list of cosigners jointly produce a single
// 64-byte signature that verifies against their public key list, with no
// key aggregation into a composite key and no threshold tolerance for
// missing signers.
//
// A signing attempt drives a Session through generate_nonce for every
// index, then partial_sign for every index, then Combine. Verify is
// stateless and takes no session.
package aggsig
