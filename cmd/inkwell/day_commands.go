package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"inkwell/internal/api"
	"inkwell/internal/config"
	"inkwell/internal/journal"
)

func newDayCommand(ctx *commandContext) *cobra.Command {
	dayCmd := &cobra.Command{
		Use:   "day",
		Short: "Manage per-day journal entries",
	}
	dayCmd.AddCommand(newDayShowCommand(ctx))
	dayCmd.AddCommand(newDaySaveCommand(ctx))
	dayCmd.AddCommand(newDaySmudgeCommand(ctx))
	return dayCmd
}

func newDayShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <date>",
		Short: "Show the journal entry for a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewDayService(store)
				entry, err := service.Day(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if entry == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "No entry for %s\n", args[0])
					return nil
				}
				if asJSON {
					return writeJSON(cmd, entry)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Date:    %s\n", entry.Date)
				fmt.Fprintf(out, "Title:   %s\n", entry.Title)
				fmt.Fprintf(out, "Content: %s\n", entry.Content)
				if len(entry.Photos) > 0 {
					fmt.Fprintf(out, "Photos:  %s\n", strings.Join(entry.Photos, ", "))
				}
				if len(entry.Tags) > 0 {
					fmt.Fprintf(out, "Tags:    %s\n", strings.Join(entry.Tags, ", "))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the entry as JSON")
	return cmd
}

func newDaySaveCommand(ctx *commandContext) *cobra.Command {
	var title string
	var content string
	var photos []string
	var tags []string

	cmd := &cobra.Command{
		Use:   "save <date>",
		Short: "Create or replace the journal entry for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewDayService(store)
				entry, err := service.SaveDay(cmd.Context(), args[0], api.DayEntryRequest{
					Title:   title,
					Content: content,
					Photos:  photos,
					Tags:    tags,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved entry for %s\n", entry.Date)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&content, "content", "", "Entry body text")
	cmd.Flags().StringArrayVar(&photos, "photo", nil, "Photo reference (repeatable)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable)")
	return cmd
}

func newDaySmudgeCommand(ctx *commandContext) *cobra.Command {
	var preset string
	var x, y, rotation, opacity float64
	var clear bool

	cmd := &cobra.Command{
		Use:   "smudge <date>",
		Short: "Set or clear the decorative ink smudge for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewDayService(store)
				if clear {
					if err := service.ClearSmudge(cmd.Context(), args[0]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Cleared smudge for %s\n", args[0])
					return nil
				}
				smudge, err := service.SetSmudge(cmd.Context(), args[0], api.Smudge{
					Preset:   preset,
					X:        x,
					Y:        y,
					Rotation: rotation,
					Opacity:  opacity,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Set %s smudge for %s\n", smudge.Preset, args[0])
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "Stain shape preset")
	cmd.Flags().Float64Var(&x, "x", 0.5, "Horizontal position in [0,1]")
	cmd.Flags().Float64Var(&y, "y", 0.5, "Vertical position in [0,1]")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "Rotation in degrees")
	cmd.Flags().Float64Var(&opacity, "opacity", 0.5, "Opacity in [0,1]")
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the smudge instead of setting it")
	return cmd
}
