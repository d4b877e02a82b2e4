// Command huffcode compresses and decompresses text files with package
// huffman.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffman"
)

var (
	log       = logrus.New()
	logLevel  string
	maxLength uint64
)

var rootCmd = &cobra.Command{
	Use:           "huffcode",
	Short:         "Huffman text coder",
	Long:          "huffcode compresses text files into a Huffman-coded format with a self-describing header, and restores them.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrapf(err, "invalid --log-level %q", logLevel)
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	log.SetOutput(os.Stderr)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().Uint64Var(&maxLength, "max-length", huffman.DefaultMaxLength, "Largest content length, in symbols, that decode will accept")
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(roundtripCmd)
	rootCmd.AddCommand(inspectCmd)
}

func codec() huffman.Codec {
	return huffman.Codec{Logger: log, MaxLength: maxLength}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("huffcode failed")
		os.Exit(1)
	}
}
