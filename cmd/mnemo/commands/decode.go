package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mnemo/internal/memzero"
	"mnemo/pkg/mnemonic"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <word>...",
		Short: "Validate a mnemonic and print its entropy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entropy, err := mnemonic.MnemonicToEntropy(strings.Join(args, " "), source)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(entropy))
			memzero.Zero(entropy)
			return nil
		},
	}
}
