package main

import (
	"bytes"
	"testing"

	"gametitle/internal/testsupport"
)

const quietConfig = `[logging]
level = "error"
`

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	return testsupport.WriteFile(t, "config.toml", body)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	t.Setenv("GAMETITLE_LOG_LEVEL", "")
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
