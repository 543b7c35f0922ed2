package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-envjson/internal/app"
	"github.com/MKhiriev/go-envjson/internal/config"
	"github.com/MKhiriev/go-envjson/internal/launcher"
	"github.com/MKhiriev/go-envjson/internal/logger"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeDeclarations(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "env.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// unsetEnv removes keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func runCLI(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	code := execute(context.Background(), args, &out)
	return code, out.String()
}

// ── loadConfig ────────────────────────────────────────────────────────────────

func TestLoadConfig_AttachesLoggerToContext(t *testing.T) {
	c := &cli{out: &bytes.Buffer{}, logger: logger.Nop()}
	cmd := &cobra.Command{}
	config.RegisterFlags(cmd.Flags())
	cmd.SetContext(context.Background())

	require.NoError(t, c.loadConfig(cmd, nil))
	require.NotNil(t, c.cfg)

	got := logger.FromContext(cmd.Context(), nil)
	assert.NotEqual(t, zerolog.Disabled, got.GetLevel())
}

// ── resolve ───────────────────────────────────────────────────────────────────

func TestResolve_PrintsResolvedVariables(t *testing.T) {
	unsetEnv(t, "PORT", "DEBUG")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HOST", "example.com")
	path := writeDeclarations(t, `{
		"PORT": {"default": 3000, "production": 80},
		"HOST": "localhost",
		"DEBUG": false
	}`)

	code, out := runCLI(t, "resolve", "--file", path, "--format", "dotenv")

	assert.Equal(t, 0, code)
	assert.Equal(t, "PORT=80\nHOST=example.com\nDEBUG=false\n", out)
}

func TestResolve_ForcedMode(t *testing.T) {
	unsetEnv(t, "PORT")
	path := writeDeclarations(t, `{"PORT": {"default": 3000, "staging": 8080}}`)

	code, out := runCLI(t, "resolve", "-f", path, "-m", "staging", "-o", "json")

	assert.Equal(t, 0, code)
	assert.Equal(t, "{\n  \"PORT\": 8080\n}\n", out)
}

func TestResolve_FunctionIsExpression(t *testing.T) {
	unsetEnv(t, "PORT", "URL")
	path := writeDeclarations(t, `{
		"PORT": 3000,
		"URL": {"type": "function", "default": "\"http://localhost:${PORT}\""}
	}`)

	code, out := runCLI(t, "resolve", "--file", path, "-o", "dotenv")

	assert.Equal(t, 0, code)
	assert.Equal(t, "PORT=3000\nURL=http://localhost:3000\n", out)
}

func TestResolve_MissingFileIsEmpty(t *testing.T) {
	code, out := runCLI(t, "resolve", "--file", filepath.Join(t.TempDir(), "absent.json"))

	assert.Equal(t, 0, code)
	assert.Equal(t, "{}\n", out)
}

func TestResolve_FatalExitsWithOne(t *testing.T) {
	unsetEnv(t, "SECRET")
	path := writeDeclarations(t, `{"SECRET": {"required": true}, "PORT": 3000}`)

	code, out := runCLI(t, "resolve", "--file", path)

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}

func TestResolve_InvalidToolConfig(t *testing.T) {
	code, _ := runCLI(t, "resolve", "--format", "xml")
	assert.Equal(t, 1, code)
}

// ── check ─────────────────────────────────────────────────────────────────────

func TestCheck(t *testing.T) {
	unsetEnv(t, "PORT")
	valid := writeDeclarations(t, `{"PORT": 3000}`)
	invalid := writeDeclarations(t, `{"PORT": {"type": "number", "default": "eighty"}}`)

	code, out := runCLI(t, "check", "--file", valid)
	assert.Equal(t, 0, code)
	assert.Empty(t, out)

	code, _ = runCLI(t, "check", "--file", invalid)
	assert.Equal(t, 1, code)
}

// ── exec ──────────────────────────────────────────────────────────────────────

func TestExec_RequiresCommand(t *testing.T) {
	code, _ := runCLI(t, "exec", "--file", writeDeclarations(t, `{}`))
	assert.Equal(t, 1, code)
}

func TestExec_CommandNotFound(t *testing.T) {
	path := writeDeclarations(t, `{"PORT": 3000}`)

	code, _ := runCLI(t, "exec", "--file", path, "--", "envjson-definitely-missing-command")
	assert.Equal(t, launcher.ExitNotFound, code)
}

// ── version ───────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	code, out := runCLI(t, "version", "--format", "xml")

	assert.Equal(t, 0, code, "version ignores the tool configuration")
	assert.Contains(t, out, "Build version: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

// ── exitCode ──────────────────────────────────────────────────────────────────

func TestExitCode(t *testing.T) {
	notFound := fmt.Errorf("%w %q: %w", app.ErrLaunch, "x", os.ErrNotExist)
	denied := fmt.Errorf("%w %q: %w", app.ErrLaunch, "x", os.ErrPermission)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"launch not found", notFound, launcher.ExitNotFound},
		{"launch denied", denied, launcher.ExitPermissionDenied},
		{"unreadable declarations", fmt.Errorf("error reading config file: %w", os.ErrPermission), 1},
		{"other", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
