package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pdsutils/internal/application/commands"
)

var filesCmd = &cobra.Command{
	Use:   "files <base> <file> <cases> <reals>",
	Short: "List a file's path in every realization folder",
	Long: `Print <base>/CaseNN/RealizationNNN/<file> for every case and
realization, cases outermost. Useful as input to patch.

Examples:
  pdsutils-cli files ./runs sim.ini 3 10
  pdsutils-cli patch Mass 12 $(pdsutils-cli files ./runs Walkway1.ini 3 10)`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid number of cases: %s", args[2])
		}
		reals, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid number of realizations: %s", args[3])
		}

		list := commands.NewFileListCommand(args[0], args[1], cases, reals)
		result, err := list.Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, p := range result.Paths {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filesCmd)
}
