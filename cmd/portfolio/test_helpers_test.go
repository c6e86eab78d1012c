package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// repoRoot is the module root, which holds the sample content directory.
var repoRoot = filepath.Join("..", "..")

// resetFlags restores every flag to its default so commands can run repeatedly.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command in-process and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(envConfig, "")
	t.Setenv(envPort, "")

	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeContent creates a content root with the given project files under content/projects.
func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "content", "projects")
	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0644))
	}
	return root
}
