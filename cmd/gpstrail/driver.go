package main

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gpstrail/gpstrail/internal/driver"
	"github.com/gpstrail/gpstrail/internal/messages"
	"github.com/gpstrail/gpstrail/internal/terminal"
)

var driverSystem driver.System = driver.RealSystem{}
var isTerminal = terminal.IsInteractive
var runFormFunc = func(form *huh.Form) error { return form.Run() }

func newDriverCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   messages.DriverUse,
		Short: messages.DriverShort,
		Long:  messages.DriverLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := driver.Options{AssumeYes: yes || !isTerminal()}
			if !opts.AssumeYes {
				opts.Confirm = confirmInstall
			}
			return driver.Run(driverSystem, cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.DriverFlagYes)
	return cmd
}

// confirmInstall asks before the Homebrew install; Enter accepts the
// default Yes. Aborting the prompt counts as declining, not as an error.
func confirmInstall(prompt string) (bool, error) {
	confirmed := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative(messages.DriverInstallYes).
			Negative(messages.DriverInstallNo).
			Value(&confirmed),
	))
	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}
