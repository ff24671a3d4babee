package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ModeEmbedded, cfg.Mode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Repo)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "changelog.yaml", ""+
		"repo: acme/monorepo\n"+
		"mode: live\n"+
		"logLevel: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "acme/monorepo", cfg.Repo)
	assert.Equal(t, ModeLive, cfg.Mode)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "changelog.yaml", "repo: acme/monorepo\nmode: live\n")

	t.Setenv("CHANGELOG_REPO", "acme/other")
	t.Setenv("CHANGELOG_MODE", "embedded")
	t.Setenv("GITHUB_TOKEN", "tok123")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "acme/other", cfg.Repo)
	assert.Equal(t, ModeEmbedded, cfg.Mode)
	assert.Equal(t, "tok123", cfg.Token)
}

func TestLoadEnvFilesMergeOverOSEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ci.env", "CHANGELOG_MODE=live\nCHANGELOG_REPO=acme/from-envfile\n")
	path := writeFile(t, dir, "changelog.yaml", "envFiles:\n  - ci.env\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeLive, cfg.Mode)
	assert.Equal(t, "acme/from-envfile", cfg.Repo)
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "changelog.yaml", "mode: psychic\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestLoadMissingEnvFileFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "changelog.yaml", "envFiles:\n  - nope.env\n")

	_, err := Load(path)
	assert.Error(t, err)
}
