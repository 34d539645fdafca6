package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := Default()
	assert.True(t, opts.AdaptiveSchema)
	assert.Equal(t, "file", opts.CheckpointBackend)
	assert.Equal(t, "checkpoint.json", opts.CheckpointPath)
	assert.Empty(t, opts.Filters)
}

func TestLoadOverlaysOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictserver.toml")
	toml := `
adaptive_schema = false
checkpoint_backend = "badger"

[[filter]]
owner_pattern = "HR"
table_pattern = "EMP%"
pk_columns = [1]
pk_names = "ID"
`
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)

	assert.False(t, opts.AdaptiveSchema)
	assert.Equal(t, "badger", opts.CheckpointBackend)
	assert.Equal(t, "checkpoint.json", opts.CheckpointPath, "fields absent from the file keep their Default() value")
	require.Len(t, opts.Filters, 1)
	assert.Equal(t, "HR", opts.Filters[0].OwnerPattern)
	assert.Equal(t, []int16{1}, opts.Filters[0].PKColumns)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}
