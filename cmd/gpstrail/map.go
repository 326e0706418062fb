package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/gpstrail/gpstrail/internal/config"
	"github.com/gpstrail/gpstrail/internal/geomap"
	"github.com/gpstrail/gpstrail/internal/messages"
	"github.com/gpstrail/gpstrail/internal/status"
	"github.com/gpstrail/gpstrail/internal/track"
)

var openInBrowser = browser.OpenFile

func newMapCmd() *cobra.Command {
	var (
		input  string
		output string
		noOpen bool
	)

	cmd := &cobra.Command{
		Use:   messages.MapUse,
		Short: messages.MapShort,
		Long:  messages.MapLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("input") {
				if cfg, err := loadConfigFunc(); err == nil {
					input = cfg.Track.File
				}
			}

			fixes, err := track.Load(input)
			if err != nil {
				return fmt.Errorf(messages.MapLoadTrackFmt, input, err)
			}
			if len(fixes) == 0 {
				return fmt.Errorf(messages.MapNoPointsFmt, input)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf(messages.MapWriteErrFmt, output, err)
			}
			if err := geomap.Render(f, fixes); err != nil {
				_ = f.Close()
				return fmt.Errorf(messages.MapRenderErrFmt, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf(messages.MapWriteErrFmt, output, err)
			}

			abs, err := filepath.Abs(output)
			if err != nil {
				abs = output
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.MapSavedFmt+"\n", len(fixes), abs)

			if noOpen {
				return nil
			}
			if err := openInBrowser(abs); err != nil {
				status.Warn(out, messages.MapOpenErrFmt, err, abs)
				return nil
			}
			_, _ = fmt.Fprintln(out, messages.MapOpened)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", config.DefaultTrackFile, messages.MapFlagInput)
	cmd.Flags().StringVarP(&output, "output", "o", "map.html", messages.MapFlagOutput)
	cmd.Flags().BoolVar(&noOpen, "no-open", false, messages.MapFlagNoOpen)
	return cmd
}
