package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-viz/lattice/change"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lattice.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "lattice.db", cfg.GetDatabasePath())
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.MaxClients)
	assert.True(t, cfg.View.Interaction.ClickingEnabled)
	assert.False(t, cfg.View.Interaction.SelectionMultiEnabled)
	assert.Equal(t, 0.1, cfg.View.Navigation.ZoomSpeed)
	assert.Equal(t, 0.3, cfg.View.Navigation.ScreenPadding)
	assert.Equal(t, 5.0, cfg.View.Style.NodeRadius)
	assert.Equal(t, 256, cfg.Emitter.Buffer)
}

func TestLoadFromFileOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "/tmp/custom.db"

[server]
port = 9000

[view.navigation]
zoom_speed = 0.25
fit_to_screen_enabled = true

[view.interaction]
selection_multi_enabled = true

[emitter]
policy = "block"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Database.Path)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 0.25, cfg.View.Navigation.ZoomSpeed)
	assert.True(t, cfg.View.Navigation.FitToScreenEnabled)
	assert.True(t, cfg.View.Interaction.SelectionMultiEnabled)
	assert.Equal(t, change.BlockWhenFull, cfg.Emitter.SinkPolicy())
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/lattice.toml")
	assert.Error(t, err)
}

func TestViewSettingsConversion(t *testing.T) {
	path := writeConfig(t, `
[view.style]
node_radius = 8.0
labels_visible = true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	interaction := cfg.View.InteractionSettings()
	assert.True(t, interaction.ClickingEnabled)
	assert.True(t, interaction.DraggingEnabled)

	nav := cfg.View.NavigationSettings()
	assert.True(t, nav.ZoomAndPanEnabled)
	assert.Equal(t, 0.1, nav.ZoomSpeed)

	style := cfg.View.StyleSettings()
	assert.Equal(t, 8.0, style.NodeRadius)
	assert.True(t, style.LabelsVisible)
	assert.Equal(t, 4.0, style.LabelCharWidth)
}

func TestSinkPolicyFallsBackToDrop(t *testing.T) {
	assert.Equal(t, change.DropWhenFull, EmitterConfig{Policy: "bogus"}.SinkPolicy())
	assert.Equal(t, change.DropWhenFull, EmitterConfig{}.SinkPolicy())
	assert.Equal(t, change.BlockWhenFull, EmitterConfig{Policy: "block"}.SinkPolicy())
}
