package cli

import (
	"github.com/spf13/cobra"
)

func NewValidateCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the dataset files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts)
		},
	}
}
