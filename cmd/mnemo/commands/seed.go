package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mnemo/internal/memzero"
	"mnemo/pkg/mnemonic"
)

func seedCmd() *cobra.Command {
	var (
		passphrase string
		prompt     bool
	)
	cmd := &cobra.Command{
		Use:   "seed <word>...",
		Short: "Derive the binary seed from a mnemonic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prompt {
				fmt.Fprint(os.Stderr, "Passphrase: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return err
				}
				passphrase = string(raw)
				memzero.Zero(raw)
			}

			seed, err := mnemonic.MnemonicToSeed(strings.Join(args, " "), passphrase, source)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(seed))
			memzero.Zero(seed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "optional passphrase")
	cmd.Flags().BoolVar(&prompt, "passphrase-prompt", false, "read the passphrase from the terminal without echo")
	return cmd
}
