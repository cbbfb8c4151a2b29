package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Caesar.Shift)
	assert.Nil(t, cfg.DTMF.Speed)
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[caesar]
shift = 7
top = 5

[xor]
warn-weak = false

[dtmf]
speed = "slow"
sample-rate = 8000

[rsa]
bits = 3072
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Caesar.Shift)
	assert.Equal(t, 7, *cfg.Caesar.Shift)
	require.NotNil(t, cfg.Caesar.Top)
	assert.Equal(t, 5, *cfg.Caesar.Top)
	assert.Nil(t, cfg.Caesar.Dict)
	require.NotNil(t, cfg.XOR.WarnWeak)
	assert.False(t, *cfg.XOR.WarnWeak)
	require.NotNil(t, cfg.DTMF.Speed)
	assert.Equal(t, "slow", *cfg.DTMF.Speed)
	require.NotNil(t, cfg.DTMF.SampleRate)
	assert.Equal(t, 8000, *cfg.DTMF.SampleRate)
	require.NotNil(t, cfg.RSA.Bits)
	assert.Equal(t, 3072, *cfg.RSA.Bits)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[caesar]\nshift = \"seven\"\n"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	assert.Equal(t, filepath.Join("/tmp/cfg", "cybertoys", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/tmp/data", "cybertoys", "cybertoys.db"), DefaultDBPath())
	assert.Equal(t, filepath.Join("/tmp/cfg", "cybertoys", "words.txt"), DefaultDictPath())
}
