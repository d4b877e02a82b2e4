package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <input> <output>",
	Short: "Restore a compressed text file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := decodeFile(args[0], args[1])
		return err
	},
}

func decodeFile(in string, out string) (string, error) {
	encoded, err := os.ReadFile(in)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", in)
	}

	text, err := codec().Decode(encoded)
	if err != nil {
		return "", errors.Wrapf(err, "decoding %s", in)
	}

	if err := os.WriteFile(out, []byte(text), 0o666); err != nil {
		return "", errors.Wrapf(err, "writing %s", out)
	}

	log.WithFields(logrus.Fields{
		"input":  in,
		"output": out,
		"before": len(encoded),
		"after":  len(text),
	}).Info("decoded")
	return text, nil
}
