package zkembed

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	groth16_bls12381 "github.com/consensys/gnark/backend/groth16/bls12-381"
)

// UnmarshalCircomVerificationKeyJSON parses JSON-encoded SnarkJS
// verification key data into a CircomVerificationKey struct.
func UnmarshalCircomVerificationKeyJSON(data []byte) (*CircomVerificationKey, error) {
	var vk CircomVerificationKey
	if err := json.Unmarshal(data, &vk); err != nil {
		return nil, fmt.Errorf("failed to parse verification key JSON: %v", err)
	}
	return &vk, nil
}

// NormalizeCircomVerifyingKey parses a SnarkJS JSON verification key over
// BLS12-381, validates it, and re-encodes it in the same canonical
// compressed form produced by NormalizeVerifyingKey.
func NormalizeCircomVerifyingKey(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyVerifyingKey
	}
	cvk, err := UnmarshalCircomVerificationKeyJSON(raw)
	if err != nil {
		return nil, err
	}
	vk, err := ConvertCircomVerificationKey(cvk)
	if err != nil {
		return nil, err
	}
	return reserializeCompressed(vk)
}

// ConvertCircomVerificationKey converts a CircomVerificationKey into a
// Gnark-compatible VerifyingKey structure, validating every group element
// on the way.
func ConvertCircomVerificationKey(cvk *CircomVerificationKey) (*groth16_bls12381.VerifyingKey, error) {
	if cvk.Protocol != "groth16" {
		return nil, fmt.Errorf("unsupported protocol %q, expected groth16", cvk.Protocol)
	}
	if !isBLS12381CurveName(cvk.Curve) {
		return nil, fmt.Errorf("unsupported curve %q, expected bls12381", cvk.Curve)
	}
	if len(cvk.IC) != cvk.NPublic+1 {
		return nil, fmt.Errorf("IC length %d does not match nPublic %d", len(cvk.IC), cvk.NPublic)
	}

	alphaG1, err := stringToG1(cvk.VkAlpha1)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk_alpha_1: %w", err)
	}
	betaG2, err := stringToG2(cvk.VkBeta2)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk_beta_2: %w", err)
	}
	gammaG2, err := stringToG2(cvk.VkGamma2)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk_gamma_2: %w", err)
	}
	deltaG2, err := stringToG2(cvk.VkDelta2)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk_delta_2: %w", err)
	}

	ic := make([]curve.G1Affine, len(cvk.IC))
	for i, icPoint := range cvk.IC {
		icG1, err := stringToG1(icPoint)
		if err != nil {
			return nil, fmt.Errorf("failed to convert IC[%d]: %w", i, err)
		}
		ic[i] = *icG1
	}

	vk := &groth16_bls12381.VerifyingKey{}
	vk.G1.Alpha = *alphaG1
	vk.G1.K = ic
	vk.G2.Beta = *betaG2
	vk.G2.Gamma = *gammaG2
	vk.G2.Delta = *deltaG2

	// Precompute e(α,β), -γ and -δ used by the pairing check.
	if err := vk.Precompute(); err != nil {
		return nil, fmt.Errorf("failed to precompute verification key: %v", err)
	}
	return vk, nil
}

func isBLS12381CurveName(name string) bool {
	switch strings.ToLower(name) {
	case "bls12381", "bls12-381", "bls12_381":
		return true
	}
	return false
}

// stringToBigInt converts a string to a big.Int, handling both decimal and
// hexadecimal representations.
func stringToBigInt(s string) (*big.Int, error) {
	if len(s) >= 2 && s[:2] == "0x" {
		bi, ok := new(big.Int).SetString(s[2:], 16)
		if !ok {
			return nil, fmt.Errorf("failed to parse hex string %s", s)
		}
		return bi, nil
	}
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("failed to parse decimal string %s", s)
	}
	return bi, nil
}

// stringToFp converts a coordinate string into a base field element,
// rejecting values outside the field instead of silently reducing them.
func stringToFp(s string) (fp.Element, error) {
	var e fp.Element
	bi, err := stringToBigInt(s)
	if err != nil {
		return e, err
	}
	if bi.Sign() < 0 || bi.Cmp(fp.Modulus()) >= 0 {
		return e, fmt.Errorf("coordinate is not a canonical field element")
	}
	e.SetBigInt(bi)
	return e, nil
}

func stringToG1(h []string) (*curve.G1Affine, error) {
	if len(h) < 3 {
		return nil, fmt.Errorf("not enough data for stringToG1")
	}
	p := new(curve.G1Affine)
	if h[2] == "0" {
		// Projective z = 0 is the point at infinity, the zero value in
		// affine representation.
		return p, nil
	}
	x, err := stringToFp(h[0])
	if err != nil {
		return nil, err
	}
	y, err := stringToFp(h[1])
	if err != nil {
		return nil, err
	}
	p.X = x
	p.Y = y
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return nil, fmt.Errorf("G1 point is not on curve or not in subgroup")
	}
	return p, nil
}

func stringToG2(h [][]string) (*curve.G2Affine, error) {
	if len(h) < 3 || len(h[0]) < 2 || len(h[1]) < 2 || len(h[2]) < 1 {
		return nil, fmt.Errorf("not enough data for stringToG2")
	}
	p := new(curve.G2Affine)
	if h[2][0] == "0" {
		return p, nil
	}
	x0, err := stringToFp(h[0][0])
	if err != nil {
		return nil, err
	}
	x1, err := stringToFp(h[0][1])
	if err != nil {
		return nil, err
	}
	y0, err := stringToFp(h[1][0])
	if err != nil {
		return nil, err
	}
	y1, err := stringToFp(h[1][1])
	if err != nil {
		return nil, err
	}
	p.X.A0, p.X.A1 = x0, x1
	p.Y.A0, p.Y.A1 = y0, y1
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return nil, fmt.Errorf("G2 point is not on curve or not in subgroup")
	}
	return p, nil
}
