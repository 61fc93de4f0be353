package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newLexiconCmd() *cobra.Command {
	var tables tableFlags

	cmd := &cobra.Command{
		Use:   "lexicon [word]",
		Short: "Print the readings of a word, or the whole word table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l, err := tables.load()
			if err != nil {
				return err
			}

			words := l.Words()
			if len(args) == 1 {
				if !l.Has(args[0]) {
					return fmt.Errorf("unknown word: %s", args[0])
				}
				words = []string{args[0]}
			}

			for _, word := range words {
				for _, e := range l.Lookup(word) {
					line := fmt.Sprintf("%s\t%s\t%s", word, e.POS, e.Canonical)
					if len(e.Features) > 0 {
						keys := make([]string, 0, len(e.Features))
						for k := range e.Features {
							keys = append(keys, k)
						}
						sort.Strings(keys)
						pairs := make([]string, len(keys))
						for i, k := range keys {
							pairs[i] = k + "=" + e.Features[k]
						}
						line += "\t" + strings.Join(pairs, ",")
					}
					fmt.Println(line)
				}
			}
			return nil
		},
	}

	tables.register(cmd)
	return cmd
}
