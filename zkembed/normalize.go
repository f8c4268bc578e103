package zkembed

import (
	"bytes"
	"fmt"

	groth16_bls12381 "github.com/consensys/gnark/backend/groth16/bls12-381"
)

// KeyEncoding identifies which accepted wire form a verifying key was
// supplied in.
type KeyEncoding int

const (
	KeyEncodingCompressed KeyEncoding = iota
	KeyEncodingUncompressed
)

func (e KeyEncoding) String() string {
	if e == KeyEncodingCompressed {
		return "compressed"
	}
	return "uncompressed"
}

// Leading metadata bits of a serialized BLS12-381 group element. The most
// significant bit distinguishes the compressed forms (0b100, 0b101, 0b110)
// from the uncompressed ones (0b000, 0b010).
const msbCompressed = 0b1 << 7

// NormalizeVerifyingKey decodes raw as a Groth16 BLS12-381 verifying key
// and re-encodes it in the canonical compressed form. Both the compressed
// and the uncompressed wire encodings are accepted; each group element
// carries its own compression flag in its leading byte, so a single
// validated decode (on-curve and subgroup checks included) covers both.
// The returned KeyEncoding reports which form the input was supplied in,
// judged by the leading element: a stream mixing forms per element still
// decodes, and is reported as whatever its first element says.
//
// The canonical bytes always come from the deserialize-then-reserialize
// round trip, never from echoing the input, so a valid key is normalized
// byte-exactly regardless of the form it arrived in.
func NormalizeVerifyingKey(raw []byte) ([]byte, KeyEncoding, error) {
	if len(raw) == 0 {
		return nil, 0, ErrEmptyVerifyingKey
	}

	encoding := KeyEncodingUncompressed
	if raw[0]&msbCompressed != 0 {
		encoding = KeyEncodingCompressed
	}

	vk := new(groth16_bls12381.VerifyingKey)
	if _, err := vk.ReadFrom(bytes.NewReader(raw)); err != nil {
		// Do not leak decoder detail; it would act as an oracle on the
		// internal key structure.
		return nil, 0, ErrUnrecognizedKeyFormat
	}

	canonical, err := reserializeCompressed(vk)
	if err != nil {
		return nil, 0, err
	}
	return canonical, encoding, nil
}

func reserializeCompressed(vk *groth16_bls12381.VerifyingKey) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := vk.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeySerialization, err)
	}
	return buf.Bytes(), nil
}
