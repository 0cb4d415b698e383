package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lattice-viz/lattice/config"
)

// ConfigCmd shows the resolved configuration.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Lattice configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		rows := pterm.TableData{
			{"Key", "Value"},
			{"database.path", cfg.GetDatabasePath()},
			{"server.port", pterm.Sprintf("%d", cfg.Server.Port)},
			{"server.max_clients", pterm.Sprintf("%d", cfg.Server.MaxClients)},
			{"server.nav_rate_per_sec", pterm.Sprintf("%.0f", cfg.Server.NavRatePerSec)},
			{"view.interaction.clicking_enabled", pterm.Sprintf("%t", cfg.View.Interaction.ClickingEnabled)},
			{"view.interaction.selection_enabled", pterm.Sprintf("%t", cfg.View.Interaction.SelectionEnabled)},
			{"view.interaction.selection_multi_enabled", pterm.Sprintf("%t", cfg.View.Interaction.SelectionMultiEnabled)},
			{"view.interaction.dragging_enabled", pterm.Sprintf("%t", cfg.View.Interaction.DraggingEnabled)},
			{"view.navigation.zoom_and_pan_enabled", pterm.Sprintf("%t", cfg.View.Navigation.ZoomAndPanEnabled)},
			{"view.navigation.fit_to_screen_enabled", pterm.Sprintf("%t", cfg.View.Navigation.FitToScreenEnabled)},
			{"view.navigation.zoom_speed", pterm.Sprintf("%.2f", cfg.View.Navigation.ZoomSpeed)},
			{"view.navigation.screen_padding", pterm.Sprintf("%.2f", cfg.View.Navigation.ScreenPadding)},
			{"view.style.node_radius", pterm.Sprintf("%.1f", cfg.View.Style.NodeRadius)},
			{"view.style.edge_radius_weight", pterm.Sprintf("%.1f", cfg.View.Style.EdgeRadiusWeight)},
			{"view.style.label_char_width", pterm.Sprintf("%.1f", cfg.View.Style.LabelCharWidth)},
			{"view.style.labels_visible", pterm.Sprintf("%t", cfg.View.Style.LabelsVisible)},
			{"emitter.policy", cfg.Emitter.Policy},
			{"emitter.buffer", pterm.Sprintf("%d", cfg.Emitter.Buffer)},
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
}
