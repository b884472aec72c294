package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/arogya/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved patient data",
	Long:  "Deletes the saved patient record and last analysis. Pass --calls to also clear the emergency call audit log.",
	RunE: func(cmd *cobra.Command, args []string) error {
		clearCalls, _ := cmd.Flags().GetBool("calls")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		records := s.RecordRepo()
		if err := records.Delete(ctx, store.KeyPatient); err != nil {
			return fmt.Errorf("delete patient record: %w", err)
		}
		if err := records.Delete(ctx, store.KeyAnalysis); err != nil {
			return fmt.Errorf("delete analysis record: %w", err)
		}
		fmt.Println("Cleared saved patient data.")

		if clearCalls {
			if err := s.CallRepo().DeleteAll(ctx); err != nil {
				return fmt.Errorf("clear call log: %w", err)
			}
			fmt.Println("Cleared emergency call log.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("calls", false, "Also clear the emergency call audit log")
}
