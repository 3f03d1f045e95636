package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"inkwell/internal/config"
	"inkwell/internal/journal"
	"inkwell/internal/logging"
	"inkwell/internal/summary"
)

func newMonthCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "month <year> <month>",
		Short: "Render the calendar summary for a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonthArgs(args)
			if err != nil {
				return err
			}
			resolver, err := ctx.resolver()
			if err != nil {
				return err
			}

			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				builder := summary.NewBuilder(store, resolver, logging.NewNop())
				summaries, err := builder.BuildMonth(cmd.Context(), year, month)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, summaries)
				}

				out := cmd.OutOrStdout()
				if len(summaries) == 0 {
					fmt.Fprintf(out, "No journal entries for %04d-%02d\n", year, month)
					return nil
				}

				// Display casing only; stored values stay verbatim.
				titleCaser := cases.Title(language.English)
				rows := make([][]string, 0, len(summaries))
				for _, day := range summaries {
					title := ""
					if day.FirstEntryTitle != nil {
						title = titleCaser.String(*day.FirstEntryTitle)
					}
					quote := ""
					if day.SummaryQuote != nil {
						quote = *day.SummaryQuote
					}
					smudge := ""
					if day.Smudge != nil {
						smudge = day.Smudge.Preset
					}
					rows = append(rows, []string{
						day.Date,
						strconv.Itoa(day.EntryCount),
						yesNo(day.IsBusy),
						title,
						quote,
						strconv.Itoa(len(day.ImageURLs)),
						smudge,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Date", "Entries", "Busy", "Title", "Quote", "Images", "Smudge"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit summaries as JSON")
	return cmd
}
