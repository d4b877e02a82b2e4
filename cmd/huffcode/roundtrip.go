package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	encodedPath string
	decodedPath string
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip <input>",
	Short: "Compress a file, restore it, and compare the result with the original",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]
		encoded := encodedPath
		if encoded == "" {
			encoded = in + ".huff"
		}
		decoded := decodedPath
		if decoded == "" {
			decoded = in + ".decoded"
		}
		return roundtrip(in, encoded, decoded)
	},
}

func init() {
	roundtripCmd.Flags().StringVarP(&encodedPath, "encoded", "e", "", "Where to write the compressed file (default <input>.huff)")
	roundtripCmd.Flags().StringVarP(&decodedPath, "decoded", "d", "", "Where to write the restored file (default <input>.decoded)")
}

func roundtrip(in string, encoded string, decoded string) error {
	original, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", in)
	}
	if err := encodeFile(in, encoded); err != nil {
		return err
	}
	text, err := decodeFile(encoded, decoded)
	if err != nil {
		return err
	}
	if text != string(original) {
		return errors.Errorf("%s does not match %s", decoded, in)
	}
	log.WithField("input", in).Info("round trip OK")
	return nil
}
