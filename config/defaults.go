package config

import "github.com/spf13/viper"

// DefaultPort is the stock session host port.
const DefaultPort = 8417

// SetDefaults configures default values for every configuration option.
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "lattice.db")

	// Server defaults
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.allowed_origins", defaultAllowedOrigins())
	v.SetDefault("server.max_clients", 32)
	v.SetDefault("server.nav_rate_per_sec", 60.0)

	// Interaction defaults: everything on for a hosted session
	v.SetDefault("view.interaction.clicking_enabled", true)
	v.SetDefault("view.interaction.selection_enabled", true)
	v.SetDefault("view.interaction.selection_multi_enabled", false)
	v.SetDefault("view.interaction.dragging_enabled", true)

	// Navigation defaults
	v.SetDefault("view.navigation.zoom_and_pan_enabled", true)
	v.SetDefault("view.navigation.fit_to_screen_enabled", false)
	v.SetDefault("view.navigation.zoom_speed", 0.1)
	v.SetDefault("view.navigation.screen_padding", 0.3)

	// Style defaults
	v.SetDefault("view.style.node_radius", 5.0)
	v.SetDefault("view.style.edge_radius_weight", 1.0)
	v.SetDefault("view.style.label_char_width", 4.0)
	v.SetDefault("view.style.labels_visible", false)

	// Emitter defaults
	v.SetDefault("emitter.policy", "drop")
	v.SetDefault("emitter.buffer", 256)
}

// BindSensitiveEnvVars explicitly binds deployment-specific values to
// environment variables.
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("database.path", "LATTICE_DATABASE_PATH")
	v.BindEnv("server.port", "LATTICE_SERVER_PORT")
}

func defaultAllowedOrigins() []string {
	return []string{
		"http://localhost",
		"https://localhost",
		"http://127.0.0.1",
		"https://127.0.0.1",
	}
}
