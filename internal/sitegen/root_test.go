package sitegen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoliathBritton/flyfox-ai-platform/internal/version"
)

var clearedEnv = []string{
	"BRANDING_FILE", "THEME_PRIMARY", "THEME_SECONDARY", "THEME_ACCENT",
	"SERVER_PORT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "OTEL_SAMPLING_RATE",
}

// setBrand points every branding variable at the Acme values and clears
// the rest of the config environment.
func setBrand(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"BRAND_NAME":    "Acme AI",
		"BRAND_COMPANY": "Acme Corp",
		"BRAND_MISSION": "Democratize AI",
		"BRAND_CONTACT": "hi@acme.com",
	} {
		t.Setenv(k, v)
	}
	for _, k := range clearedEnv {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--dotenv", t.TempDir()}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()

	dotenv := cmd.PersistentFlags().Lookup("dotenv")
	require.NotNil(t, dotenv)
	assert.Equal(t, ".", dotenv.DefValue)

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"render", "export", "validate", "version"})
}

func TestRender(t *testing.T) {
	setBrand(t)

	out, err := run(t, "render")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Acme AI Platform")
	assert.Contains(t, out, "Contact: hi@acme.com")
}

func TestRender_InvalidBranding(t *testing.T) {
	setBrand(t)
	t.Setenv("BRAND_CONTACT", "   ")

	out, err := run(t, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact")
	assert.NotContains(t, out, "<html")
}

func TestExport(t *testing.T) {
	setBrand(t)
	dir := filepath.Join(t.TempDir(), "site")

	out, err := run(t, "export", "--out", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		filepath.Join(dir, "index.html"),
		filepath.Join(dir, "static", "styles.css"),
		filepath.Join(dir, "README.md"),
	}, lines)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Acme AI Platform")
}

func TestValidate(t *testing.T) {
	setBrand(t)

	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:      Acme AI\n")
	assert.Contains(t, out, "Primary:   #FF6B35\n")
	assert.True(t, strings.HasSuffix(out, "ok\n"))
}

func TestValidate_BadColor(t *testing.T) {
	setBrand(t)
	t.Setenv("THEME_ACCENT", "red")

	_, err := run(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent")
}

func TestValidate_DotEnv(t *testing.T) {
	setBrand(t)
	os.Unsetenv("BRAND_NAME")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BRAND_NAME=Dotenv AI\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("BRAND_NAME") })

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dotenv", dir, "validate"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Name:      Dotenv AI\n")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sitegen "+version.Info().String()+"\n", out)
}
