package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lattice-viz/lattice/config"
	"github.com/lattice-viz/lattice/document"
	"github.com/lattice-viz/lattice/errors"
)

// DocCmd manages stored graph documents.
var DocCmd = &cobra.Command{
	Use:   "doc",
	Short: "Manage stored graph documents",
	Long: `Import, list, export and remove graph documents in the Lattice store.
Documents are TOML or YAML files describing nodes and edges; import
validates them before storing.`,
}

var docImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a document file and store it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.LoadFile(args[0])
		if err != nil {
			return err
		}

		// Build validates names and endpoints before anything is stored
		g, err := doc.Build()
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SaveDocument(doc); err != nil {
			return err
		}

		pterm.Success.Printfln("Imported %q (%d nodes, %d edges)",
			doc.Name, g.NodeCount(), g.EdgeCount())
		return nil
	},
}

var docLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List stored documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		names, err := store.ListDocuments()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			pterm.Info.Println("No documents stored")
			return nil
		}

		rows := pterm.TableData{{"Name", "Nodes", "Edges"}}
		for _, name := range names {
			doc, err := store.LoadDocument(name)
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				name,
				pterm.Sprintf("%d", len(doc.Nodes)),
				pterm.Sprintf("%d", len(doc.Edges)),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

var docExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Export a stored document to a TOML or YAML file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		doc, err := store.LoadDocument(args[0])
		if err != nil {
			return err
		}
		if err := document.SaveFile(args[1], doc); err != nil {
			return err
		}

		pterm.Success.Printfln("Exported %q to %s", args[0], args[1])
		return nil
	},
}

var docRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a stored document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteDocument(args[0]); err != nil {
			return err
		}
		pterm.Success.Printfln("Removed %q", args[0])
		return nil
	},
}

func init() {
	DocCmd.AddCommand(docImportCmd)
	DocCmd.AddCommand(docLsCmd)
	DocCmd.AddCommand(docExportCmd)
	DocCmd.AddCommand(docRmCmd)
}

// openStore opens the configured document store.
func openStore() (*document.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return document.Open(cfg.GetDatabasePath())
}
