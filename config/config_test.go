/*
File    : loxmix/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialOverrideKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".loxmixrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"lox> \"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lox> ", cfg.Prompt)
	assert.True(t, cfg.ColorEnabled, "unset fields must keep the default")
}

func TestLoad_FullOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".loxmixrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color_enabled: false\nprompt: \"> \"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{ColorEnabled: false, Prompt: "> "}, cfg)
}

func TestLoadDefault_UsesLoxmixConfigEnvVarWhenSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"env> \"\n"), 0o644))
	t.Setenv(configEnvVar, path)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "env> ", cfg.Prompt)
}

func TestLoadDefault_FallsBackToCurrentDirectory(t *testing.T) {
	t.Setenv(configEnvVar, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".loxmixrc.yaml"), []byte("prompt: \"cwd> \"\n"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "cwd> ", cfg.Prompt)
}
