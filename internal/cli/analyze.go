package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thesaurus/internal/render"
	"thesaurus/internal/service"
	"thesaurus/internal/tokenizer"
)

const defaultTitle = "thesaurus"

func newAnalyzeCommand(flags *Flags, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Render a text with the translation of every word under it",
		Long: `Render a text with the translation of every word under it.

The text is read from file, or from stdin when file is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, title, err := readText(cmd, args)
			if err != nil {
				return err
			}
			return withSession(flags, open, func(s *Session) error {
				return runAnalyze(cmd, s, flags, text, title)
			})
		},
	}

	cmd.Flags().StringVar(&flags.Format, "format", flags.Format, "Output format: term or html")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func runAnalyze(cmd *cobra.Command, s *Session, flags *Flags, text, title string) error {
	renderer, err := newRenderer(flags.Format)
	if err != nil {
		return err
	}

	engine := service.NewReadingEngine(s.Store, newTokenizer(s, flags), renderer, s.Logger)
	analysis, err := engine.AnalyzeTags(cmd.Context(), text,
		firstNonEmpty(flags.Foreign, s.Config.Reader.ForeignLang),
		firstNonEmpty(flags.Native, s.Config.Reader.NativeLang),
	)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flags.Output != "" {
		f, err := os.Create(flags.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	statistics := service.FormatStatistics(analysis.Stats, renderer.Styler())

	s.Logger.Info("Text analyzed",
		zap.String("statistics", service.FormatStatisticsPlain(analysis.Stats)),
		zap.String("format", flags.Format),
	)

	if flags.Format == FormatHTML {
		return render.WritePage(w, title, *analysis, statistics)
	}
	_, err = fmt.Fprintf(w, "%s\n\n%s", statistics, analysis.Markup)
	return err
}

func newRenderer(format string) (*render.Renderer, error) {
	switch format {
	case FormatTerminal:
		return render.New(render.NewCellMeasurer(), render.NewTerminalStyler()), nil
	case FormatHTML:
		return render.New(render.NewCellMeasurer(), render.NewHTMLStyler()), nil
	default:
		return nil, fmt.Errorf("unknown format %q, want %s or %s", format, FormatTerminal, FormatHTML)
	}
}

func newTokenizer(s *Session, flags *Flags) *tokenizer.Tokenizer {
	return tokenizer.New(firstNonEmpty(flags.WordChars, s.Config.Reader.WordChars, tokenizer.DefaultWordChars))
}

// readText reads the file named by args or stdin and returns it with a
// page title
func readText(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), defaultTitle, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), filepath.Base(args[0]), nil
}
