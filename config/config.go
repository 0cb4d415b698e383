// Package config loads Lattice configuration with Viper: TOML files merged
// in precedence order, LATTICE_* environment overrides, and typed access to
// the interaction, navigation, style, emitter and server settings.
package config

import (
	"github.com/lattice-viz/lattice/change"
	"github.com/lattice-viz/lattice/view"
)

// Config is the full Lattice configuration tree.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	View     ViewConfig     `mapstructure:"view"`
	Emitter  EmitterConfig  `mapstructure:"emitter"`
}

// DatabaseConfig locates the SQLite store for documents and viewports.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig configures the WebSocket session host.
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxClients     int      `mapstructure:"max_clients"`
	// NavRatePerSec caps how many nav events per second each session
	// forwards to its client; bursts beyond it are dropped.
	NavRatePerSec float64 `mapstructure:"nav_rate_per_sec"`
}

// ViewConfig mirrors the view settings structs in file form.
type ViewConfig struct {
	Interaction InteractionConfig `mapstructure:"interaction"`
	Navigation  NavigationConfig  `mapstructure:"navigation"`
	Style       StyleConfig       `mapstructure:"style"`
}

type InteractionConfig struct {
	ClickingEnabled       bool `mapstructure:"clicking_enabled"`
	SelectionEnabled      bool `mapstructure:"selection_enabled"`
	SelectionMultiEnabled bool `mapstructure:"selection_multi_enabled"`
	DraggingEnabled       bool `mapstructure:"dragging_enabled"`
}

type NavigationConfig struct {
	ZoomAndPanEnabled  bool    `mapstructure:"zoom_and_pan_enabled"`
	FitToScreenEnabled bool    `mapstructure:"fit_to_screen_enabled"`
	ZoomSpeed          float64 `mapstructure:"zoom_speed"`
	ScreenPadding      float64 `mapstructure:"screen_padding"`
}

type StyleConfig struct {
	NodeRadius       float64 `mapstructure:"node_radius"`
	EdgeRadiusWeight float64 `mapstructure:"edge_radius_weight"`
	LabelCharWidth   float64 `mapstructure:"label_char_width"`
	LabelsVisible    bool    `mapstructure:"labels_visible"`
}

// EmitterConfig configures the change sink attached to sessions.
type EmitterConfig struct {
	// Policy is "drop" or "block"; anything else falls back to drop.
	Policy string `mapstructure:"policy"`
	Buffer int    `mapstructure:"buffer"`
}

// InteractionSettings converts to the view settings struct.
func (c ViewConfig) InteractionSettings() view.SettingsInteraction {
	return view.SettingsInteraction{
		ClickingEnabled:       c.Interaction.ClickingEnabled,
		SelectionEnabled:      c.Interaction.SelectionEnabled,
		SelectionMultiEnabled: c.Interaction.SelectionMultiEnabled,
		DraggingEnabled:       c.Interaction.DraggingEnabled,
	}
}

// NavigationSettings converts to the view settings struct.
func (c ViewConfig) NavigationSettings() view.SettingsNavigation {
	return view.SettingsNavigation{
		ZoomAndPanEnabled:  c.Navigation.ZoomAndPanEnabled,
		FitToScreenEnabled: c.Navigation.FitToScreenEnabled,
		ZoomSpeed:          c.Navigation.ZoomSpeed,
		ScreenPadding:      c.Navigation.ScreenPadding,
	}
}

// StyleSettings converts to the view settings struct.
func (c ViewConfig) StyleSettings() view.SettingsStyle {
	return view.SettingsStyle{
		NodeRadius:       c.Style.NodeRadius,
		EdgeRadiusWeight: c.Style.EdgeRadiusWeight,
		LabelCharWidth:   c.Style.LabelCharWidth,
		LabelsVisible:    c.Style.LabelsVisible,
	}
}

// SinkPolicy maps the configured emitter policy to a sink policy.
func (c EmitterConfig) SinkPolicy() change.Policy {
	if c.Policy == "block" {
		return change.BlockWhenFull
	}
	return change.DropWhenFull
}

// GetDatabasePath returns the configured store path with the stock fallback.
func (c *Config) GetDatabasePath() string {
	if c.Database.Path == "" {
		return "lattice.db"
	}
	return c.Database.Path
}

// GetServerAllowedOrigins returns the allowed WebSocket origins.
func (c *Config) GetServerAllowedOrigins() []string {
	if len(c.Server.AllowedOrigins) == 0 {
		return defaultAllowedOrigins()
	}
	return c.Server.AllowedOrigins
}
