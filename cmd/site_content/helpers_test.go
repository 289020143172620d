package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-content/internal/config"
)

// execute runs the CLI in-process with args and returns stdout. Flag values
// from earlier runs are reset first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithEnv(t, nil, args...)
}

// executeWithEnv is execute with the config environment variables cleared
// and then set from env.
func executeWithEnv(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{config.EnvBaseURL, config.EnvContentDir, config.EnvPort} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
	for key, value := range env {
		t.Setenv(key, value)
	}

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// contentDir copies the bundled documents to a temp dir, replacing any in
// overrides.
func contentDir(t *testing.T, overrides map[string]string) string {
	t.Helper()
	src := filepath.Join("..", "..", "internal", "content", "data")
	dir := t.TempDir()

	entries, err := os.ReadDir(src)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(src, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, e.Name()), data, 0o644))
	}
	for name, doc := range overrides {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644))
	}
	return dir
}
