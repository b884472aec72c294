package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/arogya/internal/llm"
	"github.com/abhisek/arogya/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM configuration and request events",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved LLM provider configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			} else {
				fmt.Println("Provider: none configured (offline mode)")
				fmt.Println()
				fmt.Println("Set AROGYA_LLM_PROVIDER plus the matching API key, or one of")
				fmt.Println("GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY.")
				return
			}
		}

		fmt.Printf("Provider: %s\n", cfg.Provider)
		switch cfg.Provider {
		case "gemini":
			fmt.Printf("Model:    %s\n", cfg.Gemini.Model)
		case "openai":
			fmt.Printf("Model:    %s\n", cfg.OpenAI.Model)
		case "anthropic":
			fmt.Printf("Model:    %s\n", cfg.Anthropic.Model)
		case "openrouter":
			fmt.Printf("Model:    %s\n", cfg.OpenRouter.Model)
		}
		fmt.Printf("Retries:  %d\n", cfg.Retry.MaxAttempts)
	},
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM request events",
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

		events, err := s.EventRepo().RecentLLMRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-16s  %-24s  %-6s  %-6s  %-7s  %-9s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
		fmt.Println(strings.Repeat("─", 106))

		var total float64
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 24 {
				model = model[:24]
			}
			cost := "-"
			if c := llm.LookupCost(e.Model); c != nil {
				usd := c.Cost(e.InputTokens, e.OutputTokens)
				total += usd
				cost = fmt.Sprintf("$%.5f", usd)
			}
			fmt.Printf("%-5d  %-19s  %-16s  %-24s  %-6d  %-6d  %-7d  %-9s  %s\n",
				e.ID,
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				cost,
				ok,
			)
		}
		if total > 0 {
			fmt.Printf("\nTotal estimated cost: $%.5f\n", total)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmListCmd)
}
