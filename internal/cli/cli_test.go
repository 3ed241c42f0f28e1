package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/progression"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd("test")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd("test")

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["catalog"])
}

func TestCatalogCmd_BuiltIn(t *testing.T) {
	out, err := execute(t, "catalog")

	require.NoError(t, err)
	assert.Contains(t, out, "species:")
	assert.Contains(t, out, "levels:")
}

func writeCatalog(t *testing.T, species string) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"species.toml": species,
		"badges.toml": `[[badge]]
id = "first"
name = "First"
condition = "count"
threshold = 1
reward = 10
`,
		"levels.toml": `[[level]]
level = 1
title = "Hatchling"
xp_ceiling = 100

[[level]]
level = 2
title = "Fledgling"
xp_ceiling = 4611686018427387904
`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestCatalogCmd_Dir(t *testing.T) {
	dir := writeCatalog(t, `[[species]]
id = "red_fox"
common_name = "Red Fox"
scientific_name = "Vulpes vulpes"
rarity = "uncommon"
points = 100
location = "local"
`)

	out, err := execute(t, "catalog", "--dir", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "species:      1 (0 vacation)")
	assert.Contains(t, out, "badges:       1")
	assert.NotContains(t, out, "warning:")
}

func TestCatalogCmd_StrictFailsOnWarnings(t *testing.T) {
	dir := writeCatalog(t, `[[species]]
id = "red_fox"
common_name = "Red Fox"
scientific_name = "Vulpes vulpes"
rarity = "uncommon"
points = 100
location = "local"
habitat = "woodland"
`)

	out, err := execute(t, "catalog", "--dir", dir, "--strict")

	require.Error(t, err)
	assert.Contains(t, out, "warning:")
	assert.Contains(t, out, "habitat")
}

func TestCatalogCmd_MissingDir(t *testing.T) {
	_, err := execute(t, "catalog", "--dir", filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}

func TestEngineSettings(t *testing.T) {
	settings := engineSettings(config.ProgressionConfig{
		XPMode:       config.XPModeFormula,
		SpamSpecies:  []string{"rock_pigeon"},
		SpamDailyCap: 3,
	})

	assert.Equal(t, progression.XPModeFormula, settings.Mode)
	assert.Equal(t, []string{"rock_pigeon"}, settings.SpamSpecies)
	assert.Equal(t, 3, settings.SpamDailyCap)
}
