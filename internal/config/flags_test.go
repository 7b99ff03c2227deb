package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// newFlags mimics the command line flags relevant to configuration.
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("xprod", pflag.ContinueOnError)
	flags.StringP("config", "c", "", "")
	flags.StringP("format", "f", "", "")
	flags.StringP("output", "o", "text", "")
	flags.IntP("limit", "n", 0, "")
	flags.Bool("count", false, "")
	flags.Bool("fail-empty", false, "")
	flags.Uint("retries", 3, "")
	flags.CountP("verbose", "v", "")
	require.Nil(t, flags.Parse(args))
	return flags
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "xprod.yml")
	require.Nil(t, os.WriteFile(path, []byte(dedent.Dedent(content)), 0o600))
	return path
}
