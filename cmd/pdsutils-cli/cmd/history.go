package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pdsutils/internal/application"
	"pdsutils/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded scans",
	Long: `List, show, and delete scans recorded with scan --record.

Examples:
  pdsutils-cli history list --limit 5
  pdsutils-cli history show 5f0c3c1e-...
  pdsutils-cli history delete 5f0c3c1e-...`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded scans, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := GetHistory()
		if err != nil {
			return err
		}
		result, err := commands.NewListRunsCommand(h, historyLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(result.Runs) == 0 {
			fmt.Println("No scans recorded.")
			return nil
		}
		for _, r := range result.Runs {
			fmt.Printf("%s  %s  %dx%d realizations, %d bodies  %s\n",
				r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Cases, r.Reals, r.Bodies, r.Root)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the report of a recorded scan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := GetHistory()
		if err != nil {
			return err
		}
		result, err := commands.NewShowRunCommand(h, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		run := result.Run
		p := run.Params
		fmt.Println(headerStyle.Render(result.Message))
		fmt.Printf("recorded:  %s (took %s)\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"), run.Duration)
		fmt.Printf("cases:     %v\n", p.Cases)
		fmt.Printf("reals:     %v\n", p.Realizations)
		fmt.Printf("chain:     %s\n", strings.Join(p.Chain, ", "))
		fmt.Printf("warm-up:   %gs at %gs per row\n\n", p.StartTime, p.SampleInterval)
		fmt.Print(application.FormatMotionReport(run.Stats))
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded scan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := GetHistory()
		if err != nil {
			return err
		}
		result, err := commands.NewDeleteRunCommand(h, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of scans (0 for all)")
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}
