package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mnemo/pkg/wordlist"
)

var (
	wordlistFile string
	debug        bool

	log    zerolog.Logger
	source wordlist.Source
	closer func() error
)

func Execute() error {
	root := &cobra.Command{
		Use:           "mnemo",
		Short:         "Mnemonic seed phrase toolbox",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if debug {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "15:04:05",
			}).Level(level).With().Timestamp().Logger()

			if wordlistFile != "" {
				f, err := wordlist.OpenFile(wordlistFile)
				if err != nil {
					return err
				}
				closer = f.Close
				source = wordlist.NewExternal(f)
				log.Debug().Str("file", wordlistFile).Msg("word list: external record file")
			} else {
				source = wordlist.English()
				log.Debug().Msg("word list: resident English table")
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closer != nil {
				return closer()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&wordlistFile, "wordlist-file", "", "read the word list from a fixed-record file instead of memory")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	root.AddCommand(generateCmd(), decodeCmd(), seedCmd(), suggestCmd(), exportCmd())
	return root.Execute()
}
