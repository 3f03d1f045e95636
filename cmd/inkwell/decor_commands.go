package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"inkwell/internal/api"
	"inkwell/internal/config"
	"inkwell/internal/journal"
)

func newDecorCommand(ctx *commandContext) *cobra.Command {
	decorCmd := &cobra.Command{
		Use:   "decor",
		Short: "Manage legacy page decorations",
	}
	decorCmd.AddCommand(newDecorListCommand(ctx))
	decorCmd.AddCommand(newDecorSetCommand(ctx))
	return decorCmd
}

func newDecorListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <year> <month> <page>",
		Short: "List a page's decorations in stacking order",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonthArgs(args)
			if err != nil {
				return err
			}
			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewDecorService(store)
				items, err := service.ListDecor(cmd.Context(), year, month, args[2])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, api.DecorListResponse{Items: items})
				}

				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintf(out, "No decorations on the %s page of %04d-%02d\n", args[2], year, month)
					return nil
				}
				rows := make([][]string, 0, len(items))
				for _, item := range items {
					rows = append(rows, []string{
						item.Kind,
						item.ItemKey,
						fmt.Sprintf("%.3f", item.X),
						fmt.Sprintf("%.3f", item.Y),
						fmt.Sprintf("%.1f", item.Rotation),
						strconv.Itoa(item.Z),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Kind", "Key", "X", "Y", "Rot", "Z"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit decorations as JSON")
	return cmd
}

func newDecorSetCommand(ctx *commandContext) *cobra.Command {
	var req api.DecorItemRequest

	cmd := &cobra.Command{
		Use:   "set <year> <month> <page>",
		Short: "Place or move one decoration by its natural key",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonthArgs(args)
			if err != nil {
				return err
			}
			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewDecorService(store)
				items, err := service.SaveDecor(cmd.Context(), year, month, args[2], []api.DecorItemRequest{req})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Page now carries %d decorations\n", len(items))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Kind, "kind", "", "Decoration kind")
	cmd.Flags().StringVar(&req.ItemKey, "key", "", "Decoration key within the kind")
	cmd.Flags().Float64Var(&req.X, "x", 0, "Horizontal position in [0,1]")
	cmd.Flags().Float64Var(&req.Y, "y", 0, "Vertical position in [0,1]")
	cmd.Flags().Float64Var(&req.Rotation, "rotation", 0, "Rotation in degrees")
	cmd.Flags().IntVar(&req.Z, "z", 0, "Stacking order")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
