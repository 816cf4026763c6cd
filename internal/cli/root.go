package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nvidales/agelens/internal/infra/logger"
	"github.com/nvidales/agelens/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "agelens",
		Short:        "agelens — biological & financial age calculator",
		Long:         "Interactive calculator for two synthetic ages: a health-adjusted biological age and a wealth-maturity financial age, plus the ratio between them.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cleanup, _ := logger.Setup(logger.Config{Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				Logger: logger.L(),
				Debug:  debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to the agelens log file")

	cmd.AddCommand(assessCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
