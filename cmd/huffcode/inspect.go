package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <encoded>",
	Short: "Print the header and code table of a compressed file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]
		data, err := os.ReadFile(in)
		if err != nil {
			return errors.Wrapf(err, "reading %s", in)
		}

		header, c, err := codec().Inspect(data)
		if err != nil {
			return errors.Wrapf(err, "inspecting %s", in)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Length() = %d\n", header.Length)
		fmt.Fprintf(w, "HeaderSize() = %d\n", header.Size())
		fmt.Fprintf(w, "PayloadSize() = %d\n", len(data)-header.Size())
		_, err = c.Dump(w)
		return err
	},
}
