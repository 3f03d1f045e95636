package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"inkwell/internal/api"
	"inkwell/internal/config"
	"inkwell/internal/journal"
)

func newEntryCommand(ctx *commandContext) *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage legacy multi-entry journal notes",
	}
	entryCmd.AddCommand(newEntryAddCommand(ctx))
	entryCmd.AddCommand(newEntryPatchCommand(ctx))
	entryCmd.AddCommand(newEntryDeleteCommand(ctx))
	entryCmd.AddCommand(newEntryMediaCommand(ctx))
	return entryCmd
}

func newEntryAddCommand(ctx *commandContext) *cobra.Command {
	var req api.EntryRequest

	cmd := &cobra.Command{
		Use:   "add <date>",
		Short: "Append a journal note to a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewDayService(store)
				entry, err := service.CreateEntry(cmd.Context(), args[0], req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created entry %d for %s\n", entry.ID, args[0])
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Entry title")
	cmd.Flags().StringVar(&req.Content, "content", "", "Entry body text")
	cmd.Flags().StringVar(&req.Mood, "mood", "", "Mood marker")
	cmd.Flags().StringVar(&req.SummaryQuote, "quote", "", "Quote shown verbatim in the month summary")
	cmd.Flags().StringArrayVar(&req.Tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringArrayVar(&req.Stickers, "sticker", nil, "Sticker identifier (repeatable)")
	return cmd
}

func newEntryPatchCommand(ctx *commandContext) *cobra.Command {
	var title, content, mood, quote string

	cmd := &cobra.Command{
		Use:   "patch <id>",
		Short: "Update individual fields of a journal note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}

			// Only flags the caller actually set become part of the patch.
			var patch api.EntryPatchRequest
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("content") {
				patch.Content = &content
			}
			if cmd.Flags().Changed("mood") {
				patch.Mood = &mood
			}
			if cmd.Flags().Changed("quote") {
				patch.SummaryQuote = &quote
			}

			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewDayService(store)
				entry, err := service.PatchEntry(cmd.Context(), id, patch)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d\n", entry.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New body text")
	cmd.Flags().StringVar(&mood, "mood", "", "New mood marker")
	cmd.Flags().StringVar(&quote, "quote", "", "New summary quote")
	return cmd
}

func newEntryDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a journal note and its media",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}
			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewDayService(store)
				if err := service.DeleteEntry(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d\n", id)
				return nil
			})
		},
	}
}

func newEntryMediaCommand(ctx *commandContext) *cobra.Command {
	var req api.MediaRequest

	cmd := &cobra.Command{
		Use:   "media <entry-id>",
		Short: "Attach an image or video to a journal note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}
			return ctx.withStore(func(_ *config.Config, store *journal.Store) error {
				service := api.NewDayService(store)
				media, err := service.AttachMedia(cmd.Context(), id, req)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Attached %s %d to entry %d\n", media.Kind, media.ID, id)
				if media.AttachmentStyle != "" {
					fmt.Fprintf(out, "Attachment style: %s\n", media.AttachmentStyle)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Kind, "kind", "image", "Media kind: image or video")
	cmd.Flags().StringVar(&req.URL, "url", "", "Object path or absolute URL")
	cmd.Flags().StringVar(&req.ThumbURL, "thumb", "", "Thumbnail reference")
	cmd.Flags().StringVar(&req.AttachmentType, "attachment", "", "Legacy attachment type (paperclip, staple, paste)")
	cmd.Flags().StringVar(&req.AttachmentStyle, "style", "", "Explicit attachment style")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}
