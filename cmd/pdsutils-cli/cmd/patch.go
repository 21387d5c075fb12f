package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdsutils/internal/adapters/filesystem"
	"pdsutils/internal/application"
	"pdsutils/internal/application/commands"
)

var patchNoCorrect bool

var patchCmd = &cobra.Command{
	Use:   "patch <property> <expected> <file>...",
	Short: "Check and set a property in sim/ini files",
	Long: `Check a "key value" property in each file and rewrite it to the
expected value where it differs. Comment lines (//) are left alone.

Examples:
  pdsutils-cli patch Mass 12 Walkway1.ini Walkway2.ini
  pdsutils-cli patch Fixed true */Walkway*.ini
  pdsutils-cli patch Damping 0.5 sim.ini --no-correct   # report only`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		expected := application.ParseValue(args[1])
		patch := commands.NewPatchPropertyCommand(filesystem.NewTextFiles(), args[0], expected, args[2:]).
			WithCorrect(!patchNoCorrect)

		result, err := patch.Execute(cmd.Context())
		if result != nil {
			for _, r := range result.Reports {
				fmt.Printf("%-12s %s\n", r.Outcome, r.Message)
			}
		}
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	patchCmd.Flags().BoolVar(&patchNoCorrect, "no-correct", false, "only report differing values")
	rootCmd.AddCommand(patchCmd)
}
