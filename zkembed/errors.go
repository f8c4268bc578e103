package zkembed

import "errors"

var (
	// ErrEmptyVerifyingKey is returned when the verifying key input holds
	// zero bytes.
	ErrEmptyVerifyingKey = errors.New("verifying key input is empty")

	// ErrUnrecognizedKeyFormat is returned when the verifying key bytes do
	// not pass validated deserialization in either accepted encoding. The
	// error deliberately carries no byte-offset detail.
	ErrUnrecognizedKeyFormat = errors.New("bytes are not a valid BLS12-381 Groth16 verifying key (compressed or uncompressed)")

	// ErrKeySerialization is returned when re-encoding a validated
	// verifying key fails. This indicates a defect, not bad input.
	ErrKeySerialization = errors.New("failed to serialize verifying key in canonical compressed form")
)
