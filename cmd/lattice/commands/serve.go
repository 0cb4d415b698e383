package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lattice-viz/lattice/config"
	"github.com/lattice-viz/lattice/document"
	"github.com/lattice-viz/lattice/errors"
	"github.com/lattice-viz/lattice/logger"
	"github.com/lattice-viz/lattice/server"
	"github.com/lattice-viz/lattice/version"
)

// ServeCmd starts the WebSocket session host.
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the Lattice session host",
	Long: `Launch the WebSocket session host. Clients open stored documents, stream
per-frame input, and receive change records and computed state back.`,
	RunE: runServe,
}

var (
	serveDBPath string
	servePort   int
	serveWatch  bool
)

func init() {
	ServeCmd.Flags().StringVar(&serveDBPath, "db-path", "", "Custom database path (overrides config)")
	ServeCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config)")
	ServeCmd.Flags().BoolVar(&serveWatch, "watch-config", false, "Reload settings when lattice.toml changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if serveDBPath != "" {
		cfg.Database.Path = serveDBPath
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	store, err := document.Open(cfg.GetDatabasePath())
	if err != nil {
		return errors.Wrap(err, "failed to open document store")
	}
	defer store.Close()

	printServeBanner(cfg)

	srv := server.New(cfg, store, logger.Logger)

	if serveWatch {
		if err := startConfigWatcher(srv); err != nil {
			logger.Warnw("Config watching disabled", "error", err)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Infow("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func startConfigWatcher(srv *server.Server) error {
	path := config.GetViper().ConfigFileUsed()
	if path == "" {
		path = "lattice.toml"
	}
	watcher, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	watcher.OnReload(func(cfg *config.Config) error {
		srv.ApplyConfig(cfg)
		return nil
	})
	watcher.Start()
	return nil
}

func printServeBanner(cfg *config.Config) {
	pterm.DefaultHeader.WithFullWidth(false).Printfln("Lattice %s", version.Get().Short())
	pterm.Info.Printfln("Port:       %d", cfg.Server.Port)
	pterm.Info.Printfln("Database:   %s", cfg.GetDatabasePath())
	pterm.Info.Printfln("MaxClients: %d", cfg.Server.MaxClients)
}
