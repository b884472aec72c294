package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/arogya/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded emergency call actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.CallRepo().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query calls: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No emergency calls recorded.")
			return nil
		}

		for _, r := range records {
			fmt.Printf("%s  %s (%s)\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Number, r.Region)
			if r.Symptoms != "" {
				fmt.Printf("    symptoms: %s\n", r.Symptoms)
			}
			if r.Severity > 0 {
				fmt.Printf("    severity: %d/10\n", r.Severity)
			}
			if r.Location != "" {
				fmt.Printf("    location: %s\n", r.Location)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
}
