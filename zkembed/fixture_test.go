package zkembed

import (
	"bytes"
	"sync"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bls12381 "github.com/consensys/gnark/backend/groth16/bls12-381"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// squareCircuit is a minimal circuit used to generate a real verifying key
// for the normalization tests: it proves knowledge of a square root.
type squareCircuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (c *squareCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(c.X, c.X), c.Y)
	return nil
}

var (
	fixtureOnce sync.Once
	fixtureVK   *groth16_bls12381.VerifyingKey
	fixtureErr  error
)

// testVerifyingKey compiles and sets up the fixture circuit once per test
// binary and returns its BLS12-381 Groth16 verifying key.
func testVerifyingKey(t *testing.T) *groth16_bls12381.VerifyingKey {
	t.Helper()
	fixtureOnce.Do(func() {
		ccs, err := frontend.Compile(ecc.BLS12_381.ScalarField(), r1cs.NewBuilder, &squareCircuit{})
		if err != nil {
			fixtureErr = err
			return
		}
		_, vk, err := groth16.Setup(ccs)
		if err != nil {
			fixtureErr = err
			return
		}
		fixtureVK = vk.(*groth16_bls12381.VerifyingKey)
	})
	if fixtureErr != nil {
		t.Fatalf("failed to set up fixture verifying key: %v", fixtureErr)
	}
	return fixtureVK
}

func compressedVKBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if _, err := testVerifyingKey(t).WriteTo(&buf); err != nil {
		t.Fatalf("failed to serialize fixture key compressed: %v", err)
	}
	return buf.Bytes()
}

func uncompressedVKBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if _, err := testVerifyingKey(t).WriteRawTo(&buf); err != nil {
		t.Fatalf("failed to serialize fixture key uncompressed: %v", err)
	}
	return buf.Bytes()
}
