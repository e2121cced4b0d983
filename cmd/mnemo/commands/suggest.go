package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mnemo/pkg/wordlist"
)

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <prefix>",
		Short: "Complete a word prefix against the vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := wordlist.Suggest(source, args[0])
			if err != nil {
				return err
			}
			log.Debug().Int("matches", len(words)).Msg("prefix search done")
			for _, w := range words {
				fmt.Println(w)
			}
			return nil
		},
	}
}
