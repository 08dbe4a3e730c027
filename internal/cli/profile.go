package cli

import (
	"github.com/spf13/cobra"
)

func NewProfileCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print summary statistics for the dataset files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(opts)
		},
	}
}
