package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thesaurus/internal/cache"
	"thesaurus/internal/domain"
	"thesaurus/internal/service"
)

func newTranslateCommand(flags *Flags, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Add or remove translations between the foreign and native language",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <word> <translation>",
			Short: "Store a translation in both directions",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(flags, open, func(s *Session) error {
					return runTranslate(cmd, s, flags, args[0], args[1], false)
				})
			},
		},
		&cobra.Command{
			Use:   "remove <word> <translation>",
			Short: "Remove a translation in both directions",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(flags, open, func(s *Session) error {
					return runTranslate(cmd, s, flags, args[0], args[1], true)
				})
			},
		},
	)

	return cmd
}

func runTranslate(cmd *cobra.Command, s *Session, flags *Flags, word, translation string, remove bool) error {
	tok := newTokenizer(s, flags)
	word = tok.TrimSeparators(word)
	translation = tok.TrimSeparators(strings.TrimSpace(translation))
	if word == "" {
		return domain.ErrEmptyWord
	}
	if translation == "" {
		return domain.ErrEmptyTranslation
	}

	ctx := cmd.Context()
	pair, err := resolvePair(ctx, s, flags)
	if err != nil {
		return err
	}

	if remove {
		if err := s.Store.Untranslate(ctx, translation, pair.NativeID, word, pair.ForeignID); err != nil {
			return fmt.Errorf("failed to remove translation: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s -> %s\n", word, translation)
	} else {
		if err := s.Store.Translate(ctx, translation, pair.NativeID, word, pair.ForeignID); err != nil {
			return fmt.Errorf("failed to add translation: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s -> %s\n", word, translation)
	}

	s.Logger.Info("Vocabulary changed",
		zap.String("word", word),
		zap.String("translation", translation),
		zap.Bool("removed", remove),
	)
	return nil
}

// resolvePair looks up the configured foreign and native languages
func resolvePair(ctx context.Context, s *Session, flags *Flags) (domain.LanguagePair, error) {
	resolver := service.NewResolver(s.Store, cache.NewTranslationCache(), s.Logger)
	return resolver.ResolveLanguagePair(ctx,
		firstNonEmpty(flags.Foreign, s.Config.Reader.ForeignLang),
		firstNonEmpty(flags.Native, s.Config.Reader.NativeLang),
	)
}
