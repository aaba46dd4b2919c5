package mmdc

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file means defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "mmdc", cfg.Binary)
		assert.Equal(t, 30*time.Second, cfg.Timeout())
	})

	t.Run("overlays values on defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "renderer.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"binary: /opt/mermaid/mmdc\ntimeout_seconds: 60\noutput_dir: /var/diagrams\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/opt/mermaid/mmdc", cfg.Binary)
		assert.Equal(t, 60*time.Second, cfg.Timeout())
		assert.Equal(t, "/var/diagrams", cfg.OutputDir)
		assert.Empty(t, cfg.TempDir)
	})

	t.Run("zero timeout falls back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "renderer.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timeout_seconds: 0\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.Timeout())
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "renderer.yaml")
		require.NoError(t, os.WriteFile(path, []byte("binary: [unclosed"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
