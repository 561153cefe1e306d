package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"thesaurus/internal/domain"
)

func newLangsCommand(flags *Flags, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List the languages of the vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(flags, open, func(s *Session) error {
				languages, err := s.Store.GetLanguages(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list languages: %w", err)
				}
				for _, tag := range languages {
					fmt.Fprintln(cmd.OutOrStdout(), tag)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <tag>",
		Short: "Add a language to the vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := domain.NormalizeTag(args[0])
			if err != nil {
				return err
			}
			return withSession(flags, open, func(s *Session) error {
				id, err := s.Store.AddLanguage(cmd.Context(), tag)
				if err != nil {
					return fmt.Errorf("failed to add language: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", tag, id)
				return nil
			})
		},
	})

	return cmd
}
