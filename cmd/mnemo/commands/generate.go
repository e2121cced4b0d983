package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mnemo/pkg/mnemonic"
)

func generateCmd() *cobra.Command {
	var words int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create a fresh mnemonic from system entropy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := mnemonic.Generate(words, source)
			if err != nil {
				return err
			}
			fmt.Println(phrase)
			return nil
		},
	}
	cmd.Flags().IntVarP(&words, "words", "w", 24, "phrase length (12, 15, 18, 21 or 24)")
	return cmd
}
