package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gpstrail/gpstrail/internal/config"
	"github.com/gpstrail/gpstrail/internal/messages"
	"github.com/gpstrail/gpstrail/internal/recorder"
	"github.com/gpstrail/gpstrail/internal/serialport"
	"github.com/gpstrail/gpstrail/internal/track"
)

var detectPort = serialport.Detect
var openPort = serialport.Open
var loadConfigFunc = loadConfig

// loadConfig reads the per-user config file, falling back to defaults when
// no file exists.
func loadConfig() (*config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

func newRecordCmd() *cobra.Command {
	var (
		port   string
		baud   int
		output string
		count  int
	)

	cmd := &cobra.Command{
		Use:   messages.RecordUse,
		Short: messages.RecordShort,
		Long:  messages.RecordLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigFunc()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("port") && cfg.Serial.Port != "" {
				port = cfg.Serial.Port
			}
			if !cmd.Flags().Changed("baud") {
				baud = cfg.Serial.Baud
			}
			if !cmd.Flags().Changed("output") {
				output = cfg.Track.File
			}

			if port == "" {
				port, err = detectPort()
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.RecordOpeningFmt+"\n", port, baud)

			existing, err := track.Load(output)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.RecordLoadedFmt+"\n", len(existing), output)

			r, err := openPort(port, baud)
			if err != nil {
				return err
			}
			defer func() { _ = r.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			// Closing the port is what actually interrupts a blocked read.
			go func() {
				<-ctx.Done()
				_ = r.Close()
			}()

			_, _ = fmt.Fprintln(out, messages.RecordWaitingForFix)
			recorded, err := recorder.Run(ctx, r, recorder.Options{
				Count:    count,
				Existing: existing,
				Save: func(fixes []track.Fix) error {
					if err := track.Save(output, fixes); err != nil {
						return fmt.Errorf(messages.RecordSaveErrFmt, output, err)
					}
					return nil
				},
				Out: out,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.RecordStoppedFmt+"\n", recorded, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", messages.RecordFlagPort)
	cmd.Flags().IntVarP(&baud, "baud", "b", config.DefaultBaud, messages.RecordFlagBaud)
	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultTrackFile, messages.RecordFlagOutput)
	cmd.Flags().IntVarP(&count, "count", "n", 0, messages.RecordFlagCount)
	return cmd
}
