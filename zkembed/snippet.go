package zkembed

import (
	"fmt"
	"strings"
	"text/template"
)

// The emitted lookup stub compares digests with subtle.ConstantTimeCompare.
// Constant-time matching is a contract on the generated code: the runtime
// verifier must not learn-or-leak which program hash matched through timing.
const snippetTemplate = `// Code generated by zk-embed. DO NOT EDIT.
// Domain separator: {{ .Domain }}
//
// Paste into the runtime verifier package next to the Groth16 verify path.

// ProgramHash_{{ .Prefix }} is the domain-separated BLAKE3 hash identifying the program.
var ProgramHash_{{ .Prefix }} = [32]byte{
{{ byteRows .ProgramHash }}}

// VK_{{ .Prefix }}_BLS12381_Groth16 is the canonical compressed Groth16 verifying key.
var VK_{{ .Prefix }}_BLS12381_Groth16 = []byte{
{{ byteRows .VKBytes }}}

// lookupProgramVK returns the verifying key registered for programHash, or
// nil if the hash is unknown. The digest comparison must remain constant
// time; do not replace subtle.ConstantTimeCompare with bytes.Equal.
func lookupProgramVK(programHash *[32]byte) []byte {
	if subtle.ConstantTimeCompare(programHash[:], ProgramHash_{{ .Prefix }}[:]) == 1 {
		return VK_{{ .Prefix }}_BLS12381_Groth16
	}
	return nil
}
`

var snippetTmpl = template.Must(template.New("snippet").
	Funcs(template.FuncMap{"byteRows": byteRows}).
	Parse(snippetTemplate))

// BuildSnippet renders the Go source block embedding the program hash and
// the canonical verifying key bytes under names derived from prefix. The
// output is deterministic for fixed inputs.
func BuildSnippet(prefix, domain string, programHash [32]byte, vkBytes []byte) string {
	var b strings.Builder
	err := snippetTmpl.Execute(&b, struct {
		Prefix      string
		Domain      string
		ProgramHash []byte
		VKBytes     []byte
	}{
		Prefix:      prefix,
		Domain:      domain,
		ProgramHash: programHash[:],
		VKBytes:     vkBytes,
	})
	if err != nil {
		// The template is fixed at compile time and byteRows cannot fail.
		panic(err)
	}
	return b.String()
}

// byteRows renders data as rows of 16 comma-separated byte literals,
// preserving order and emitting every byte exactly once.
func byteRows(data []byte) string {
	var b strings.Builder
	for i, v := range data {
		if i%16 == 0 {
			b.WriteByte('\t')
		}
		fmt.Fprintf(&b, "0x%02x,", v)
		if i%16 == 15 || i == len(data)-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
