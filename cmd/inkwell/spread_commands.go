package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"inkwell/internal/api"
	"inkwell/internal/config"
	"inkwell/internal/journal"
)

func newSpreadCommand(ctx *commandContext) *cobra.Command {
	spreadCmd := &cobra.Command{
		Use:   "spread",
		Short: "Inspect and edit monthly spreads",
	}
	spreadCmd.AddCommand(newSpreadShowCommand(ctx))
	spreadCmd.AddCommand(newSpreadSaveCommand(ctx))
	return spreadCmd
}

func newSpreadShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <year> <month>",
		Short: "Show a month's spread and its elements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonthArgs(args)
			if err != nil {
				return err
			}
			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewSpreadService(store)
				resp, err := service.SpreadForMonth(cmd.Context(), year, month)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Spread %d for %04d-%02d (%d elements)\n", resp.Spread.ID, year, month, len(resp.Elements))
				if len(resp.Elements) == 0 {
					return nil
				}
				rows := make([][]string, 0, len(resp.Elements))
				for _, el := range resp.Elements {
					rows = append(rows, []string{
						el.ID,
						el.PageSide,
						el.Type,
						fmt.Sprintf("%.3f", el.X),
						fmt.Sprintf("%.3f", el.Y),
						fmt.Sprintf("%.3f", el.W),
						fmt.Sprintf("%.3f", el.H),
						fmt.Sprintf("%.1f", el.Rotation),
						strconv.Itoa(el.ZIndex),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Page", "Type", "X", "Y", "W", "H", "Rot", "Z"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the spread as JSON")
	return cmd
}

func newSpreadSaveCommand(ctx *commandContext) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "save <year> <month>",
		Short: "Replace a month's full element set from a JSON file",
		Long: "Reads the complete desired element set from a JSON file and reconciles " +
			"the stored spread against it: absent elements are deleted, known ids are " +
			"overwritten, and new or placeholder ids are inserted.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonthArgs(args)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("read element file: %w", err)
			}

			var req api.SaveElementsRequest
			if err := json.Unmarshal(data, &req); err != nil || req.Elements == nil {
				// Accept a bare element array too.
				var elements []api.Element
				if arrErr := json.Unmarshal(data, &elements); arrErr != nil {
					return fmt.Errorf("parse element file: %w", arrErr)
				}
				req.Elements = elements
			}

			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewSpreadService(store)
				resp, err := service.SaveElements(cmd.Context(), year, month, req.Elements)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %d elements to spread %d (%04d-%02d)\n",
					len(resp.Elements), resp.Spread.ID, year, month)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the JSON element set")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func parseYearMonthArgs(args []string) (int, int, error) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", args[0])
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q", args[1])
	}
	return year, month, nil
}
