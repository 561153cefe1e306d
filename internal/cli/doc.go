// Package cli provides the command-line reader. It renders texts against
// the vocabulary database and manages languages, translations and words.
// Flags are layered over a config file and THESAURUS_* environment
// variables with viper.
package cli
