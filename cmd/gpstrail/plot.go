package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gpstrail/gpstrail/internal/config"
	"github.com/gpstrail/gpstrail/internal/messages"
	"github.com/gpstrail/gpstrail/internal/track"
	"github.com/gpstrail/gpstrail/internal/trackplot"
)

var savePlot = trackplot.Save

func newPlotCmd() *cobra.Command {
	var (
		input  string
		save   string
		noLine bool
	)

	cmd := &cobra.Command{
		Use:   messages.PlotUse,
		Short: messages.PlotShort,
		Long:  messages.PlotLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("input") {
				if cfg, err := loadConfigFunc(); err == nil {
					input = cfg.Track.File
				}
			}

			fixes, err := track.Load(input)
			if err != nil {
				return err
			}

			if err := savePlot(fixes, save, trackplot.Options{NoLine: noLine}); err != nil {
				if errors.Is(err, trackplot.ErrNoPoints) {
					return fmt.Errorf(messages.PlotNoPointsFmt, input)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.PlotSavedFmt+"\n", len(fixes), save)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", config.DefaultTrackFile, messages.PlotFlagInput)
	cmd.Flags().StringVarP(&save, "save", "s", "gps_track.png", messages.PlotFlagSave)
	cmd.Flags().BoolVar(&noLine, "no-line", false, messages.PlotFlagNoLine)
	return cmd
}
