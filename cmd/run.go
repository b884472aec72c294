package cmd

import (
	"fmt"

	"github.com/abhisek/arogya/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	deps, err := app.BuildDeps(cmd.Context(), dbPath)
	if err != nil {
		return err
	}
	defer deps.Store.Close()

	return app.Run(deps)
}
