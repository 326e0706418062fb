package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gpstrail/gpstrail/internal/messages"
	"github.com/gpstrail/gpstrail/internal/serialport"
)

var listPorts = serialport.List

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.PortsUse,
		Short: messages.PortsShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := listPorts()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(infos) == 0 {
				_, _ = fmt.Fprintln(out, messages.PortsNoneFound)
				return nil
			}

			_, _ = fmt.Fprintf(out, messages.PortsHeaderFmt+"\n", len(infos))
			for _, p := range infos {
				switch {
				case p.IsUSB && p.LikelyGPS():
					_, _ = fmt.Fprintf(out, messages.PortsGPSFmt+"\n", p.Name, p.VID, p.PID, p.SerialNumber)
				case p.IsUSB:
					_, _ = fmt.Fprintf(out, messages.PortsUSBFmt+"\n", p.Name, p.VID, p.PID, p.SerialNumber)
				default:
					_, _ = fmt.Fprintf(out, messages.PortsLineFmt+"\n", p.Name)
				}
			}
			return nil
		},
	}
}
