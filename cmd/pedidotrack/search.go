package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ordexa/pedidotrack/pkg/pedidos/query"
	"github.com/ordexa/pedidotrack/pkg/pedidos/store"
)

var (
	searchPedidos string
	searchMarca   string
	searchDestino string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the order table",
	Long: `Filters the persisted table by order number, brand and destination.
Order numbers accept a list separated by comma, semicolon or space; brand
and destination match as case-insensitive substrings.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchPedidos, "pedidos", "", "order number(s), e.g. \"4501644489, 4501765866\"")
	searchCmd.Flags().StringVar(&searchMarca, "marca", "", "brand substring")
	searchCmd.Flags().StringVar(&searchDestino, "destino", "", "destination substring")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer tracker.Close()

	rows, err := tracker.Search(ctx, query.Filter{
		Pedidos: searchPedidos,
		Marca:   searchMarca,
		Destino: searchDestino,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No orders matched the given filters.")
		return nil
	}

	// A single hit gets the detail card; more than one gets the listing.
	if len(rows) == 1 {
		printDetail(out, rows[0])
		return nil
	}

	fmt.Fprintf(out, "%d orders found\n", len(rows))
	printRows(out, rows)
	return nil
}

func printDetail(w io.Writer, o store.Order) {
	fmt.Fprintf(w, "Order %s\n", o.Pedido)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Status:        %s\n", orDash(o.Status))
	fmt.Fprintf(w, "Brand:         %s\n", orDash(o.Marca))
	fmt.Fprintf(w, "Destination:   %s\n", orDash(o.Destino))
	fmt.Fprintf(w, "Issued:        %s\n", orDash(o.Emissao))
	fmt.Fprintf(w, "Qty ordered:   %s\n", orDash(o.QtdPedido))
	fmt.Fprintf(w, "Qty invoiced:  %s\n", orDash(o.QtdFaturado))
	fmt.Fprintf(w, "Last change:   %s\n", orDash(o.Alteracao))
}

func printRows(w io.Writer, rows []store.Order) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(store.Columns, "\t"))
	for _, o := range rows {
		fmt.Fprintln(tw, strings.Join(o.Fields(), "\t"))
	}
	tw.Flush()
}

func printTail(w io.Writer, rows []store.Order, n int) {
	if len(rows) > n {
		rows = rows[len(rows)-n:]
	}
	printRows(w, rows)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
