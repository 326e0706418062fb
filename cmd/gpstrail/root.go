package main

import (
	"github.com/spf13/cobra"

	"github.com/gpstrail/gpstrail/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.AddCommand(
		newDriverCmd(),
		newRecordCmd(),
		newMapCmd(),
		newPlotCmd(),
		newPortsCmd(),
		newDoctorCmd(),
	)
	return cmd
}
