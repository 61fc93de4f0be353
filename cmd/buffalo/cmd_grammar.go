package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var tables tableFlags

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the active grammar rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := tables.load()
			if err != nil {
				return err
			}
			for _, rule := range g.Rules() {
				fmt.Println(rule)
			}
			return nil
		},
	}

	tables.register(cmd)
	return cmd
}
