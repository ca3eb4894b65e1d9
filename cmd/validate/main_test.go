package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EmbeddedCatalogPassesWithWarnings(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run("", &out))

	assert.Contains(t, out.String(), "Validating embedded catalog")
	assert.Contains(t, out.String(), "warning:")
	assert.Contains(t, out.String(), "文法の洞窟")
}

func TestRun_BrokenCatalogFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	data := `{"start_location":"nowhere","locations":{},"vocabulary":{},"battles":{},"events":[],"rewards":[]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	var out bytes.Buffer
	err := run(path, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `start location "nowhere" is not defined`)
}

func TestRun_RejectsNonJSONExtension(t *testing.T) {
	var out bytes.Buffer
	err := run("catalog.yaml", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".json extension")
}

func TestRun_UnknownFieldFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"start_location":"a","monsters":{}}`), 0o600))

	var out bytes.Buffer
	assert.Error(t, run(path, &out))
}
