package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordexa/pedidotrack/pkg/pedidos/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the order table as CSV",
	Long: `Writes the persisted order table in its canonical 9-column layout as
UTF-8 CSV with a byte-order mark, ready for spreadsheet tools.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "orders-export.csv", "output CSV path")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer tracker.Close()

	table, err := tracker.Load(ctx)
	if err != nil {
		return err
	}

	out, err := os.Create(exportOut)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := export.WriteOrders(out, table); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d order(s) written to %s\n", len(table), exportOut)
	return nil
}
