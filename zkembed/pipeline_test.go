package zkembed

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEmbedPipeline runs the full derive -> normalize -> emit composition
// the CLI performs for a program named "demo".
func TestEmbedPipeline(t *testing.T) {
	programHash := DeriveProgramHash(DefaultProgramDomain, []byte("demo"))

	vkBytes, encoding, err := NormalizeVerifyingKey(uncompressedVKBytes(t))
	require.NoError(t, err)
	require.Equal(t, KeyEncodingUncompressed, encoding)

	snippet := BuildSnippet(SanitizeIdent("demo"), DefaultProgramDomain, programHash, vkBytes)

	// The emitted hash constant equals the independently computed
	// reference for ("NONOS:ZK:PROGRAM:v1", "demo"), and the key constant
	// equals the canonical compressed encoding.
	reference, err := hex.DecodeString("a4540319e4fd0b12fe980abedeecbc24064b413c4c8f6ae29eef31ed314c1373")
	require.NoError(t, err)
	require.Equal(t, reference, extractArrayBytes(t, snippet, "ProgramHash_DEMO"))
	require.Equal(t, compressedVKBytes(t), extractArrayBytes(t, snippet, "VK_DEMO_BLS12381_Groth16"))
}
