package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lattice-viz/lattice/config"
	"github.com/lattice-viz/lattice/geom"
	"github.com/lattice-viz/lattice/logger"
	"github.com/lattice-viz/lattice/view"
)

// FitCmd computes the fit-to-screen transform for a stored document without
// starting a server. Useful for checking layout extents and debugging
// viewport math.
var FitCmd = &cobra.Command{
	Use:   "fit <name>",
	Short: "Compute the fit-to-screen transform for a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runFit,
}

var (
	fitWidth  float64
	fitHeight float64
)

func init() {
	FitCmd.Flags().Float64VarP(&fitWidth, "width", "W", 800, "Canvas width")
	FitCmd.Flags().Float64VarP(&fitHeight, "height", "H", 600, "Canvas height")
}

func runFit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := store.LoadDocument(args[0])
	if err != nil {
		return err
	}
	g, err := doc.Build()
	if err != nil {
		return err
	}

	v := view.New(g, logger.Logger).
		WithNavigation(cfg.View.NavigationSettings()).
		WithStyle(cfg.View.StyleSettings())

	vp := view.NewViewport()
	comp := v.Update(vp, view.NewInput(geom.R(0, 0, fitWidth, fitHeight)))

	bounds := comp.GraphBounds()
	rows := pterm.TableData{
		{"Canvas", pterm.Sprintf("%.0f x %.0f", fitWidth, fitHeight)},
		{"Bounds min", pterm.Sprintf("(%.2f, %.2f)", bounds.Min.X, bounds.Min.Y)},
		{"Bounds max", pterm.Sprintf("(%.2f, %.2f)", bounds.Max.X, bounds.Max.Y)},
		{"Zoom", pterm.Sprintf("%.4f", vp.Zoom)},
		{"Pan", pterm.Sprintf("(%.2f, %.2f)", vp.Pan.X, vp.Pan.Y)},
	}
	return pterm.DefaultTable.WithData(rows).Render()
}
