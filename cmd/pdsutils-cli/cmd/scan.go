package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pdsutils/internal/adapters/filesystem"
	"pdsutils/internal/application"
	"pdsutils/internal/application/commands"
	"pdsutils/internal/config"
)

var (
	scanProfile        string
	scanCases          []int
	scanReals          []int
	scanBodies         []string
	scanPrefix         string
	scanFirst          int
	scanLast           int
	scanStartTime      float64
	scanSampleInterval float64
	scanAxes           []string
	scanRecord         bool
)

var headerStyle = lipgloss.NewStyle().Bold(true)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find the maximum relative motion between adjacent bodies",
	Long: `Scan position.dat results of a body chain across cases and realizations
and report, per axis, the largest difference between adjacent bodies.

Results are read from <root>/CaseNN/RealizationNNN/Results/<body>/position.dat.
Flags override values from a YAML profile.

The warm-up skip is 2 header rows plus start-time / sample-interval rows,
rounded to the nearest row when the division lands within 1e-9 of it
(0.3s at 0.1s skips 3 rows, not 2). A realization with no samples left
after the skip fails the scan.

Examples:
  pdsutils-cli scan --cases 1,2 --reals 1,2,3 --prefix Walkway --first 1 --last 50
  pdsutils-cli scan --profile walkway.yaml --axes roll,yaw --start-time 200
  pdsutils-cli scan --profile walkway.yaml --record`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := &config.ScanProfile{SampleInterval: config.SampleInterval()}
		if scanProfile != "" {
			var err error
			profile, err = config.LoadScanProfile(scanProfile)
			if err != nil {
				return err
			}
		}
		if profile.Root == "" || cmd.Flags().Changed("root") {
			profile.Root = rootPath
		}

		flags := cmd.Flags()
		if flags.Changed("cases") {
			profile.Cases = scanCases
		}
		if flags.Changed("reals") {
			profile.Realizations = scanReals
		}
		if flags.Changed("bodies") {
			profile.Bodies = scanBodies
		}
		if flags.Changed("prefix") {
			profile.Bodies = nil
			profile.Chain = config.ChainProfile{Prefix: scanPrefix, First: scanFirst, Last: scanLast}
		}
		if flags.Changed("start-time") {
			profile.StartTime = scanStartTime
		}
		if flags.Changed("sample-interval") {
			profile.SampleInterval = scanSampleInterval
		}
		if flags.Changed("axes") {
			profile.Axes = scanAxes
		}

		scan := commands.NewScanCommand(filesystem.NewTableLoader(),
			profile.Root, profile.Cases, profile.Realizations, profile.BodyNames(), profile.StartTime).
			WithSampleInterval(profile.SampleInterval).
			WithAxes(profile.Axes)
		if scanRecord {
			h, err := GetHistory()
			if err != nil {
				return err
			}
			scan.WithHistory(h)
		}

		result, err := scan.Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(result.Message))
		fmt.Print(application.FormatMotionReport(result.Stats))
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanProfile, "profile", "p", "", "YAML scan profile")
	scanCmd.Flags().IntSliceVar(&scanCases, "cases", nil, "case numbers")
	scanCmd.Flags().IntSliceVar(&scanReals, "reals", nil, "realization numbers")
	scanCmd.Flags().StringSliceVar(&scanBodies, "bodies", nil, "ordered body chain")
	scanCmd.Flags().StringVar(&scanPrefix, "prefix", "", "generate the chain as <prefix><first>..<prefix><last>")
	scanCmd.Flags().IntVar(&scanFirst, "first", 1, "first body number of a generated chain")
	scanCmd.Flags().IntVar(&scanLast, "last", 1, "last body number of a generated chain")
	scanCmd.Flags().Float64Var(&scanStartTime, "start-time", 0, "seconds of warm-up to skip")
	scanCmd.Flags().Float64Var(&scanSampleInterval, "sample-interval", config.SampleInterval(), "seconds between position.dat rows")
	scanCmd.Flags().StringSliceVar(&scanAxes, "axes", nil, "axes to scan (x, y, z, roll, pitch, yaw)")
	scanCmd.Flags().BoolVar(&scanRecord, "record", false, "record the scan in the history database")
	scanCmd.MarkFlagsMutuallyExclusive("bodies", "prefix")
	rootCmd.AddCommand(scanCmd)
}
