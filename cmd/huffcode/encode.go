package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <input> <output>",
	Short: "Compress a text file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return encodeFile(args[0], args[1])
	},
}

func encodeFile(in string, out string) error {
	text, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", in)
	}

	encoded, err := codec().Encode(string(text))
	if err != nil {
		return errors.Wrapf(err, "encoding %s", in)
	}

	if err := os.WriteFile(out, encoded, 0o666); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}

	log.WithFields(logrus.Fields{
		"input":  in,
		"output": out,
		"before": len(text),
		"after":  len(encoded),
	}).Info("encoded")
	return nil
}
