package aggsig

import "errors"

// Argument violations.
var (
	ErrNilArgument      = errors.New("aggsig: nil argument")
	ErrInvalidKeyCount  = errors.New("aggsig: session requires at least one public key")
	ErrIndexOutOfRange  = errors.New("aggsig: index out of range")
	ErrCountMismatch    = errors.New("aggsig: partial signature count does not match session size")
	ErrSessionDestroyed = errors.New("aggsig: session already destroyed")
)

// State-machine violations.
var ErrWrongState = errors.New("aggsig: operation violates session state machine")

// Cryptographic parse failures.
var (
	ErrScalarOverflow      = errors.New("aggsig: scalar overflow")
	ErrInvalidXCoordinate  = errors.New("aggsig: invalid x coordinate")
	ErrChallengeOverflow   = errors.New("aggsig: challenge hash overflowed the scalar field")
	ErrNonceGeneration     = errors.New("aggsig: failed to sample a nonce after the maximum number of attempts")
)
