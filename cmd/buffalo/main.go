package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/ConAcademy/BuffaloBuffalo/english"
	"github.com/ConAcademy/BuffaloBuffalo/grammar"
	"github.com/ConAcademy/BuffaloBuffalo/lexicon"
)

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "buffalo",
		Short: "Parse ambiguous English sentences into every valid tree",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLexiconCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// tableFlags are the --grammar/--lexicon file flags shared by every
// subcommand; empty values select the built-in English tables.
type tableFlags struct {
	grammarPath string
	lexiconPath string
}

func (f *tableFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.grammarPath, "grammar", "", "grammar file (default: built-in English grammar)")
	cmd.Flags().StringVar(&f.lexiconPath, "lexicon", "", "lexicon file (default: built-in English lexicon)")
}

func (f *tableFlags) load() (*grammar.Grammar, *lexicon.Lexicon, error) {
	g := english.Grammar()
	l := english.Lexicon()
	var err error
	if f.grammarPath != "" {
		if g, err = grammar.Load(f.grammarPath); err != nil {
			return nil, nil, fmt.Errorf("load grammar: %w", err)
		}
	}
	if f.lexiconPath != "" {
		if l, err = lexicon.Load(f.lexiconPath); err != nil {
			return nil, nil, fmt.Errorf("load lexicon: %w", err)
		}
	}
	return g, l, nil
}
