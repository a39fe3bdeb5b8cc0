package aggsig

// Wire-format sizes, in bytes.
const (
	ScalarSize           = 32
	CompressedPubKeySize = 33
	SignatureSize        = 64
	SeedSize             = 32
)

// verifyBatchWidth bounds how many (scalar, point) terms Verify accumulates
// per batch before moving to the next. The reference implementation uses
// this to bound scratch space for its multi-scalar-multiplication
// primitive; this module has no such primitive (see DESIGN.md), but keeps
// the same chunked accumulation shape so that Verify's cost profile and
// structure match the design this scheme assumes.
const verifyBatchWidth = 8

// maxNonceIterations bounds the RFC 6979 resample loop in GenerateNonce.
// Resampling is only triggered by a scalar overflow or a zero scalar, both
// of which occur with cryptographically negligible probability.
const maxNonceIterations = 256
