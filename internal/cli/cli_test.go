package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsfix/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)
	assert.Equal(t, "gocsfix", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"fix", "list-fixers", "describe", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	for _, name := range []string{"debug", "config", "chdir", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestFixCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	fixCmd, _, err := cmd.Find([]string{"fix"})
	require.NoError(t, err)

	for _, name := range []string{
		"dry-run", "diff", "allow-risky", "enable", "disable", "format", "jobs",
		"max-passes", "no-cache", "cache-file", "no-backups", "short-open-tag",
		"ignore", "verbose",
	} {
		assert.NotNil(t, fixCmd.Flags().Lookup(name), name)
	}

	require.NoError(t, fixCmd.Args(fixCmd, []string{"a.php", "src/"}))
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "gocsfix")
	assert.Contains(t, out.String(), "1.2.3")
}

func TestHelpIsStyledPlainWithoutColor(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"fix", "--help", "--color", "never"})

	require.NoError(t, cmd.Execute())
	help := out.String()
	assert.Contains(t, help, "Usage:")
	assert.Contains(t, help, "--dry-run")
	assert.Contains(t, help, "Global Flags:")
}
