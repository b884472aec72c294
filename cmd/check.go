package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/arogya/internal/i18n"
	"github.com/abhisek/arogya/internal/triage"
	"github.com/spf13/cobra"
)

// checkOutput is the JSON shape printed by `arogya check`.
type checkOutput struct {
	IsEmergency bool     `json:"isEmergency"`
	Type        string   `json:"type,omitempty"`
	Level       string   `json:"level"`
	Confidence  float64  `json:"confidence,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	Keyword     string   `json:"keyword,omitempty"`
	Immediate   []string `json:"immediateActions,omitempty"`
	Avoid       []string `json:"avoidActions,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check [symptom description]",
	Short: "Run the emergency check once and print the result",
	Long: `Runs the rule-based emergency classifier on the given symptoms and
prints the classification. Never calls an LLM; works fully offline.

Examples:
  arogya check "crushing chest pain" --severity 8
  arogya check --tags chest-pain,breathing --age 65+ --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		severity, _ := cmd.Flags().GetString("severity")
		duration, _ := cmd.Flags().GetString("duration")
		age, _ := cmd.Flags().GetString("age")
		lang, _ := cmd.Flags().GetString("lang")
		tags, _ := cmd.Flags().GetString("tags")
		asJSON, _ := cmd.Flags().GetBool("json")

		text := strings.Join(args, " ")
		if text == "" {
			// Accept piped text: echo "chest pain" | arogya check
			if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimSpace(string(data))
			}
		}

		input := triage.PatientInput{
			FreeText: text,
			Severity: triage.ParseSeverity(severity),
			Duration: duration,
			AgeGroup: triage.AgeBracket(age),
			Language: i18n.Lang(lang),
		}
		if tags != "" {
			for _, t := range strings.Split(tags, ",") {
				input.Symptoms = append(input.Symptoms, triage.SymptomTag(strings.TrimSpace(t)))
			}
		}

		c := triage.Classify(input)
		bundle := triage.Recommendations(c)

		if asJSON {
			out := checkOutput{
				IsEmergency: c.IsEmergency,
				Type:        c.Type,
				Level:       string(c.Level),
				Confidence:  c.Confidence,
				Reason:      c.Reason,
				Keyword:     c.Keyword,
				Immediate:   bundle.Immediate,
				Avoid:       bundle.Avoid,
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		if !c.IsEmergency {
			fmt.Println("No emergency indicators detected.")
			return nil
		}

		fmt.Printf("EMERGENCY (%s, confidence %.2f)\n", c.Level, c.Confidence)
		fmt.Printf("Reason: %s\n", c.Reason)
		if c.Keyword != "" {
			fmt.Printf("Matched: %q\n", c.Keyword)
		}
		if len(bundle.Immediate) > 0 {
			fmt.Println("\nDo now:")
			for _, r := range bundle.Immediate {
				fmt.Println("  -", r)
			}
		}
		if len(bundle.Avoid) > 0 {
			fmt.Println("\nDo NOT:")
			for _, r := range bundle.Avoid {
				fmt.Println("  -", r)
			}
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("severity", "s", "", "Self-reported severity 1-10")
	checkCmd.Flags().StringP("duration", "d", "", "Duration bucket (few-hours, today, 1-2-days, 3-7-days, over-week, chronic)")
	checkCmd.Flags().StringP("age", "a", "", "Age group (18-30, 31-50, 51-65, 65+)")
	checkCmd.Flags().StringP("lang", "l", "en", "Language code for keyword matching")
	checkCmd.Flags().StringP("tags", "t", "", "Comma-separated symptom tags (e.g. chest-pain,breathing)")
	checkCmd.Flags().Bool("json", false, "Print the result as JSON")
}
