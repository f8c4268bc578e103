// Package cmd wires the zk-embed command line: it resolves the program
// identifier, feeds the hash and key normalization pipeline, and writes the
// generated snippet.
package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/JoeGouws82/nonos-boot/zkembed"
)

var (
	fProgramIDStr  string
	fProgramIDHex  string
	fProgramIDFile string
	fVkPath        string
	fVkFormat      string
	fConstPrefix   string
	fDomain        string
	fOutPath       string
)

var rootCmd = &cobra.Command{
	Use:          "zk-embed",
	Short:        "derive PROGRAM_HASH and emit canonical Groth16 VK bytes for the bootloader",
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	flags := rootCmd.Flags()
	flags.StringVar(&fProgramIDStr, "program-id-str", "", "program/circuit ID as UTF-8 string")
	flags.StringVar(&fProgramIDHex, "program-id-hex", "", "program/circuit ID as hex (optional 0x prefix)")
	flags.StringVar(&fProgramIDFile, "program-id-file", "", "program/circuit ID from raw bytes file")
	flags.StringVar(&fVkPath, "vk", "", "verifying key file (compressed or uncompressed)")
	flags.StringVar(&fVkFormat, "vk-format", "bin", "verifying key format: bin (gnark binary) or circom (SnarkJS JSON)")
	flags.StringVar(&fConstPrefix, "const-prefix", zkembed.DefaultConstPrefix, "prefix for generated const names (e.g. ATTEST_V1)")
	flags.StringVar(&fDomain, "ds-program", zkembed.DefaultProgramDomain, "domain separator for PROGRAM_HASH (leave default unless you know what you're doing)")
	flags.StringVar(&fOutPath, "out", "", "path to write the generated snippet (stdout if not set)")
	if err := rootCmd.MarkFlagRequired("vk"); err != nil {
		panic(err)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	pid, err := resolveProgramID(cmd)
	if err != nil {
		return err
	}
	programHash := zkembed.DeriveProgramHash(fDomain, pid)

	vkRaw, err := os.ReadFile(fVkPath)
	if err != nil {
		return fmt.Errorf("read verifying key %s: %w", fVkPath, err)
	}

	var vkBytes []byte
	switch fVkFormat {
	case "bin":
		var encoding zkembed.KeyEncoding
		vkBytes, encoding, err = zkembed.NormalizeVerifyingKey(vkRaw)
		if err != nil {
			return fmt.Errorf("normalize verifying key %s: %w", fVkPath, err)
		}
		log.Info().
			Stringer("supplied_encoding", encoding).
			Int("canonical_bytes", len(vkBytes)).
			Msg("verifying key normalized")
	case "circom":
		vkBytes, err = zkembed.NormalizeCircomVerifyingKey(vkRaw)
		if err != nil {
			return fmt.Errorf("normalize circom verifying key %s: %w", fVkPath, err)
		}
		log.Info().
			Int("canonical_bytes", len(vkBytes)).
			Msg("circom verifying key normalized")
	default:
		return fmt.Errorf("unknown --vk-format %q (want bin or circom)", fVkFormat)
	}

	prefix := zkembed.SanitizeIdent(fConstPrefix)
	snippet := zkembed.BuildSnippet(prefix, fDomain, programHash, vkBytes)

	if fOutPath != "" {
		if err := os.WriteFile(fOutPath, []byte(snippet), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", fOutPath, err)
		}
		log.Info().Str("path", fOutPath).Msg("snippet written")
		return nil
	}
	fmt.Print(snippet)
	return nil
}

// resolveProgramID loads the program identifier bytes from whichever of the
// three sources was given. Exactly one must be set; an empty identifier is
// legal, which is why presence is checked on the flag and not the value.
func resolveProgramID(cmd *cobra.Command) ([]byte, error) {
	flags := cmd.Flags()
	set := 0
	for _, name := range []string{"program-id-str", "program-id-hex", "program-id-file"} {
		if flags.Changed(name) {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("provide exactly one of --program-id-str | --program-id-hex | --program-id-file")
	}

	switch {
	case flags.Changed("program-id-str"):
		return []byte(fProgramIDStr), nil
	case flags.Changed("program-id-hex"):
		h := strings.TrimSpace(fProgramIDHex)
		h = strings.TrimPrefix(h, "0x")
		h = strings.TrimPrefix(h, "0X")
		b, err := hex.DecodeString(h)
		if err != nil {
			return nil, fmt.Errorf("program-id-hex: %w", err)
		}
		return b, nil
	default:
		b, err := os.ReadFile(fProgramIDFile)
		if err != nil {
			return nil, fmt.Errorf("read program-id-file %s: %w", fProgramIDFile, err)
		}
		return b, nil
	}
}
