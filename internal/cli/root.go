package cli

import (
	"github.com/spf13/cobra"
)

type Options struct {
	DataDir string
}

func NewRootCmd() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "eta",
		Short: "eta - data-quality gate for the ETA modeling datasets",
		Long: `eta validates the traffic, weather and events CSV files that feed the
travel-time model. It checks schemas, field contents and timestamp
mergeability, and rejects the data on the first violation found.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.DataDir, "data-dir", "d", "",
		`directory containing the dataset files (default "data", or ETA_DATA_DIR)`)

	rootCmd.AddCommand(NewValidateCmd(opts), NewProfileCmd(opts))

	return rootCmd
}
