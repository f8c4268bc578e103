// Package zkembed derives domain-separated program hashes and normalizes
// Groth16 BLS12-381 verifying keys into their canonical compressed encoding,
// so both can be embedded as constants in the runtime verifier.
package zkembed

import (
	"lukechampine.com/blake3"
)

// DefaultProgramDomain is the domain separator bound into PROGRAM_HASH
// derivation. Changing it changes every derived hash; leave the default
// unless a protocol version bump requires otherwise.
const DefaultProgramDomain = "NONOS:ZK:PROGRAM:v1"

// DeriveProgramHash derives the 32-byte PROGRAM_HASH for a program
// identifier using BLAKE3 in derive-key mode, with the domain separator as
// the context string. The derivation is deterministic and total: every
// input, including an empty identifier, maps to a hash.
func DeriveProgramHash(domain string, programID []byte) [32]byte {
	var hash [32]byte
	blake3.DeriveKey(hash[:], domain, programID)
	return hash
}
