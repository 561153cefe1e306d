package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newWordsCommand(flags *Flags, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Inspect and edit stored words",
	}

	list := &cobra.Command{
		Use:   "list <word|text>",
		Short: "List the stored translations of a word with their ids",
		Long: `List the stored translations of a word with their ids.

With --at the argument is a text and the word under that rune offset is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(flags, open, func(s *Session) error {
				return runWordsList(cmd, s, flags, args[0])
			})
		},
	}
	list.Flags().IntVar(&flags.At, "at", flags.At, "Rune offset of the word inside the text")

	update := &cobra.Command{
		Use:   "update <id> <text>",
		Short: "Change the text of a stored word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseWordID(args[0])
			if err != nil {
				return err
			}
			text := strings.TrimSpace(args[1])
			if text == "" {
				return fmt.Errorf("text cannot be empty")
			}
			return withSession(flags, open, func(s *Session) error {
				if err := s.Store.Update(cmd.Context(), id, text); err != nil {
					return fmt.Errorf("failed to update word: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated %d\n", id)
				return nil
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a stored word with all its translations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseWordID(args[0])
			if err != nil {
				return err
			}
			return withSession(flags, open, func(s *Session) error {
				if err := s.Store.Remove(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to remove word: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", id)
				return nil
			})
		},
	}

	cmd.AddCommand(list, update, remove)
	return cmd
}

func runWordsList(cmd *cobra.Command, s *Session, flags *Flags, arg string) error {
	tok := newTokenizer(s, flags)

	word := tok.TrimSeparators(strings.TrimSpace(arg))
	if flags.At >= 0 {
		word = tok.WordAt(arg, flags.At)
	}
	if word == "" {
		return fmt.Errorf("no word found in %q", arg)
	}

	ctx := cmd.Context()
	pair, err := resolvePair(ctx, s, flags)
	if err != nil {
		return err
	}

	words, err := s.Store.ListTranslations(ctx, word, pair.ForeignID, pair.NativeID)
	if err != nil {
		return fmt.Errorf("failed to list translations: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(words) == 0 {
		fmt.Fprintf(out, "%s has no translations\n", word)
		return nil
	}
	for _, w := range words {
		fmt.Fprintf(out, "%d\t%s\n", w.ID, w.Text)
	}
	return nil
}

func parseWordID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid word id %q", arg)
	}
	return id, nil
}
