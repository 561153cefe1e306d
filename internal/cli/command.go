package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags, open Opener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "thesaurus",
		Short: "Interlinear reader backed by a personal vocabulary",
		Long: `thesaurus renders a foreign-language text with the stored native
translation of every word aligned under it, and reports how many of the
words are already known.

Examples:
  thesaurus analyze -f de -n en chapter1.txt     # render to the terminal
  thesaurus analyze --format html -o out.html    # read stdin, write a page
  thesaurus translate add Hund dog -f de -n en   # store a translation
  thesaurus words list --at 4 "Der Hund bellt"   # translations of "Hund"`,
		SilenceUsage: true,
	}

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		newAnalyzeCommand(flags, open),
		newLangsCommand(flags, open),
		newTranslateCommand(flags, open),
		newWordsCommand(flags, open),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.thesaurus.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Verbose logging")
	cmd.PersistentFlags().StringVar(&flags.DBDriver, "db-driver", "", "Database driver: postgres, pgx or sqlite3 (default from DB_DRIVER)")
	cmd.PersistentFlags().StringVar(&flags.SQLitePath, "sqlite-path", "", "SQLite database file (default from SQLITE_PATH)")
	cmd.PersistentFlags().StringVar(&flags.WordChars, "word-chars", "", "Characters besides letters that form words (default from READER_WORD_CHARS)")
	cmd.PersistentFlags().StringVarP(&flags.Foreign, "foreign", "f", "", "Foreign language tag (default from FOREIGN_LANG)")
	cmd.PersistentFlags().StringVarP(&flags.Native, "native", "n", "", "Native language tag (default from NATIVE_LANG)")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("database.driver", cmd.PersistentFlags().Lookup("db-driver"))
	viper.BindPFlag("database.sqlite_path", cmd.PersistentFlags().Lookup("sqlite-path"))
	viper.BindPFlag("reader.word_chars", cmd.PersistentFlags().Lookup("word-chars"))
	viper.BindPFlag("reader.foreign", cmd.PersistentFlags().Lookup("foreign"))
	viper.BindPFlag("reader.native", cmd.PersistentFlags().Lookup("native"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".thesaurus" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".thesaurus")
	}

	// Environment variables
	viper.SetEnvPrefix("THESAURUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// withSession opens a session for the duration of fn
func withSession(flags *Flags, open Opener, fn func(s *Session) error) error {
	session, err := open(flags)
	if err != nil {
		return err
	}
	defer session.Close()
	return fn(session)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
