package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ByLCY/cryptogram/cipher"
	"github.com/ByLCY/cryptogram/quotes"
)

func newEncipherCommand(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "encipher <quotes.yml>",
		Short: "逐条加密引文并打印密文与提示",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			texts, err := quotes.LoadFile(args[0])
			if err != nil {
				return err
			}
			qs, err := encipherAll(newEngine(cfg), texts)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), qs)
		},
	}
}

// writeReport 每条引文输出四行：序号与原文、大写密文、提示、空行。
func writeReport(w io.Writer, qs []*cipher.Quote) error {
	for i, q := range qs {
		if _, err := fmt.Fprintf(w, "%d. %s\n%s\n%s\n\n", i+1, q.Text, q.Puzzle(), q.Clue.Long()); err != nil {
			return err
		}
	}
	return nil
}
