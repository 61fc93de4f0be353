package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ConAcademy/BuffaloBuffalo/parse"
)

func newParseCmd() *cobra.Command {
	var tables tableFlags
	var outputFormat string
	var maxTrees int

	cmd := &cobra.Command{
		Use:   "parse <word>...",
		Short: "Parse a sentence and print every distinct tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, l, err := tables.load()
			if err != nil {
				return err
			}

			tokens := args
			if len(args) == 1 && strings.ContainsRune(args[0], ' ') {
				tokens = strings.Fields(args[0])
			}

			parser := parse.New(g, l)
			if maxTrees > 0 {
				parser.SetMaxTrees(maxTrees)
			}
			result, err := parser.Parse(tokens)
			if err != nil {
				return err
			}

			switch outputFormat {
			case "lisp":
				for _, t := range result.Trees {
					fmt.Println(t.Canonical())
				}
			case "pretty":
				for i, t := range result.Trees {
					if i > 0 {
						fmt.Println()
					}
					fmt.Printf("# tree %d, weight %g\n", i+1, t.Weight)
					fmt.Println(t.Root)
				}
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result.Trees); err != nil {
					return fmt.Errorf("encode trees: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	tables.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "pretty", "output format (pretty, lisp, json)")
	cmd.Flags().IntVar(&maxTrees, "max-trees", 0, "cap on returned trees (default: parser default)")

	return cmd
}
