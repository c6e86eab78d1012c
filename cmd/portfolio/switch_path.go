package main

import (
	"fmt"

	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/spf13/cobra"
)

var switchPathCmd = &cobra.Command{
	Use:   "switch-path <path>",
	Short: "Print the equivalent path in the other locale",
	Args:  cobra.ExactArgs(1),
	RunE:  runSwitchPath,
}

var switchCurrent string

func init() {
	switchPathCmd.Flags().StringVar(&switchCurrent, "current", "", "Locale currently shown (es or en) (required)")

	if err := switchPathCmd.MarkFlagRequired("current"); err != nil {
		panic(fmt.Sprintf("failed to mark current flag as required: %v", err))
	}

	rootCmd.AddCommand(switchPathCmd)
}

func runSwitchPath(cmd *cobra.Command, args []string) error {
	current, err := i18n.ParseLocale(switchCurrent)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), i18n.SwitchLocalePath(args[0], current))
	return err
}
