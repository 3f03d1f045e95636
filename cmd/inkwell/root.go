package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "inkwell",
		Short:         "Inkwell planner journal CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newSpreadCommand(ctx))
	rootCmd.AddCommand(newMonthCommand(ctx))
	rootCmd.AddCommand(newDayCommand(ctx))
	rootCmd.AddCommand(newEntryCommand(ctx))
	rootCmd.AddCommand(newDecorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
