package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordexa/pedidotrack/pkg/pedidos/internalerr"
)

var pasteFile string

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Merge pasted order lines into the order table",
	Long: `Reads one or more orders' worth of fields, as copied from the order
management screen (tabs and line breaks both separate fields), and merges
them into the persisted table by order number.

Input comes from stdin, or from a file with --file.`,
	RunE: runPaste,
}

func init() {
	pasteCmd.Flags().StringVarP(&pasteFile, "file", "f", "", "read the pasted block from a file instead of stdin")
}

func runPaste(cmd *cobra.Command, args []string) error {
	var raw []byte
	var err error
	if pasteFile != "" {
		raw, err = os.ReadFile(pasteFile)
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	ctx := context.Background()
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer tracker.Close()

	stats, err := tracker.UpsertPasted(ctx, string(raw))
	if err != nil {
		var fce *internalerr.FieldCountError
		switch {
		case errors.Is(err, internalerr.ErrEmptyInput):
			return fmt.Errorf("paste at least one order")
		case errors.As(err, &fce):
			return fmt.Errorf("could not read the pasted block: %s (copy only the order lines, without the header row)", fce)
		}
		return err
	}

	table, err := tracker.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Table updated. New: %d · Updated: %d · Total: %d\n",
		stats.Inserted, stats.Updated, len(table))
	printTail(cmd.OutOrStdout(), table, 5)
	return nil
}
