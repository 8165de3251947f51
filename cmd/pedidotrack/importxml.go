package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordexa/pedidotrack/pkg/pedidos"
	"github.com/ordexa/pedidotrack/pkg/pedidos/export"
)

var importOut string

var importXMLCmd = &cobra.Command{
	Use:   "import-xml <file>...",
	Short: "Flatten vendor XML exports into the reporting layout",
	Long: `Parses one or more vendor XML order exports, flattens their sections,
derives the reporting fields (normalized dates, color, resolved status and
brand names) and writes the projected item table as CSV. A malformed file
is reported as a warning and does not stop the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImportXML,
}

func init() {
	importXMLCmd.Flags().StringVarP(&importOut, "out", "o", "pedidos.csv", "output CSV path")
}

func runImportXML(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer tracker.Close()

	files := make([]pedidos.File, 0, len(args))
	handles := make([]*os.File, 0, len(args))
	defer func() {
		for _, h := range handles {
			h.Close()
		}
	}()

	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		handles = append(handles, f)
		files = append(files, pedidos.File{Name: path, Reader: f})
	}

	result, err := tracker.ImportXML(ctx, files)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		log.Printf("batch %s: %s", result.BatchID, warning)
	}

	out, err := os.Create(importOut)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := export.WriteTable(out, result.Final); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Batch %s: %d items from %d file(s) written to %s\n",
		result.BatchID, len(result.Final.Rows), len(args), importOut)
	return nil
}
