package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pdsutils/internal/adapters/filesystem"
	"pdsutils/internal/application/commands"
	"pdsutils/internal/domain"
)

var duplicateIncr []float64

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <folder> <body> <n>",
	Short: "Duplicate a rigid body into n offset copies",
	Long: `Copy <body>.ini and write <body>.dat for n new bodies numbered after the
source body, each offset from the previous by --incr, and register them
in sim.ini.

Examples:
  pdsutils-cli duplicate ./model Walkway3 2 --incr 10,0,0,0,0,0
  pdsutils-cli duplicate ./model Ramp 5 --incr 0,0,0.5,0,0,1`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid number of copies: %s", args[2])
		}
		incr, err := domain.Vector6FromSlice(duplicateIncr)
		if err != nil {
			return fmt.Errorf("--incr: %w", err)
		}

		dup := commands.NewDuplicateBodyCommand(filesystem.NewTextFiles(), args[0], args[1], n, incr)
		result, err := dup.Execute(cmd.Context())
		if err != nil {
			return err
		}

		for i, name := range result.Created {
			fmt.Printf("%s  %s\n", name, result.Positions[i])
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	duplicateCmd.Flags().Float64SliceVar(&duplicateIncr, "incr", nil, "position increment per copy: x,y,z,rx,ry,rz")
	duplicateCmd.MarkFlagRequired("incr")
	rootCmd.AddCommand(duplicateCmd)
}
