package commands

import (
	"github.com/spf13/cobra"

	"mnemo/pkg/wordlist"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Stage the vocabulary into a fixed-record file",
		Long: `Export writes the active word list as 2048 fixed-size records, the
geometry the external backing reads. The resulting file can be flashed to a
device or passed back via --wordlist-file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wordlist.WriteFile(args[0], source); err != nil {
				return err
			}
			log.Debug().Str("path", args[0]).Msg("word list exported")
			return nil
		},
	}
}
