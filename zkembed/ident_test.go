package zkembed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeIdent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"attest v1", "ATTEST_V1"},
		{"ATTEST_V1", "ATTEST_V1"},
		{"attest-v1.2", "ATTEST_V1_2"},
		{"boot/stage2", "BOOT_STAGE2"},
		{"", "PROGRAM"},
		{"!!!", "PROGRAM"},
		{"___", "PROGRAM"},
		{"héllo", "H_LLO"},
		{"0day", "0DAY"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SanitizeIdent(tc.in), "input %q", tc.in)
	}
}
