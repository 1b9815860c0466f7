package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/randtok/randtok"
	"github.com/randtok/randtok/internal/config"
	"github.com/randtok/randtok/internal/logger"
)

func init() { //nolint:gochecknoinits
	generateCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the config directory")
	generateCmd.Flags().IntVarP(&length, "length", "l", 0, "Token length (overrides config)")
	generateCmd.Flags().IntVarP(&count, "count", "n", 0, "Number of tokens (overrides config)")
	generateCmd.Flags().StringVar(&charsetFlag, "charset", "", "Alphabet to draw from (overrides config)")
	generateCmd.Flags().BoolVar(&wide, "runes", false, "Treat the charset rune-wise for multi-byte alphabets")

	rootCmd.AddCommand(generateCmd)
}

var (
	configPath  string // Path to the configuration file
	length      int
	count       int
	charsetFlag string
	wide        bool

	cfg config.Config

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate random tokens to stdout",
		PreRun: func(_ *cobra.Command, _ []string) {
			cfg = config.Default()

			if configPath != "" {
				var err error
				if cfg, err = config.ReadConfig(configPath); err != nil {
					panic(err)
				}
			}

			// flags win over config
			if charsetFlag != "" {
				cfg.Token.Charset = charsetFlag
			}

			if length > 0 {
				cfg.Token.Length = length
			}

			if count > 0 {
				cfg.Token.Count = count
			}

			if wide {
				cfg.Token.Runes = true
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(cfg.Log); err != nil {
				return err
			}

			return generate(cmd.OutOrStdout(), &cfg.Token)
		},
	}
)

// generate prints the requested tokens, one per line.
func generate(w io.Writer, t *config.Token) error {
	if t.Runes {
		g, err := randtok.NewRunes(t.Charset)
		if err != nil {
			return err
		}

		for range t.Count {
			fmt.Fprintln(w, randtok.RuneString(g, t.Length))
		}

		return nil
	}

	g, err := randtok.NewString(t.Charset)
	if err != nil {
		return err
	}

	for range t.Count {
		fmt.Fprintln(w, randtok.String(g, t.Length))
	}

	return nil
}
