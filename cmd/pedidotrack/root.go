package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ordexa/pedidotrack/pkg/pedidos"
	"github.com/ordexa/pedidotrack/pkg/pedidos/config"
	"github.com/ordexa/pedidotrack/pkg/pedidos/store"
	"github.com/ordexa/pedidotrack/pkg/pedidos/store/csvfile"
	"github.com/ordexa/pedidotrack/pkg/pedidos/store/sqlite"
)

var (
	backend     string
	csvPath     string
	dbPath      string
	lookupsPath string
	layoutPath  string
)

var rootCmd = &cobra.Command{
	Use:   "pedidotrack",
	Short: "Track purchase-order status from pasted text and vendor XML exports",
	Long: `pedidotrack normalizes purchase-order data into a flat order table:
paste order lines copied from the management screen, import vendor XML
exports, and search or export the resulting base.`,
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&backend, "backend", "csv", "order store backend: csv or sqlite")
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "orders.csv", "path of the persisted order table (csv backend)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "orders.db", "path of the order database (sqlite backend)")
	rootCmd.PersistentFlags().StringVar(&lookupsPath, "lookups", "", "YAML file overriding status/brand lookup tables")
	rootCmd.PersistentFlags().StringVar(&layoutPath, "layout", "", "YAML file overriding the export layout")

	rootCmd.AddCommand(pasteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(importXMLCmd)
	rootCmd.AddCommand(exportCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine.
		if !os.IsNotExist(err) {
			log.Printf("loading .env: %v", err)
		}
	}

	if v := os.Getenv("PEDIDOS_BACKEND"); v != "" {
		backend = v
	}
	if v := os.Getenv("PEDIDOS_CSV"); v != "" {
		csvPath = v
	}
	if v := os.Getenv("PEDIDOS_DB"); v != "" {
		dbPath = v
	}
}

func openStore(ctx context.Context) (store.Store, error) {
	if backend == "sqlite" {
		return sqlite.Open(ctx, dbPath)
	}
	return csvfile.Open(csvPath)
}

func openTracker(ctx context.Context) (*pedidos.Tracker, error) {
	st, err := openStore(ctx)
	if err != nil {
		return nil, err
	}

	loader := &config.Loader{LookupsPath: lookupsPath, LayoutPath: layoutPath}
	comp, err := loader.Load()
	if err != nil {
		st.Close()
		return nil, err
	}

	return pedidos.New(pedidos.Options{
		Store:   st,
		Deriver: comp.Deriver,
		Layout:  comp.Layout,
	}), nil
}
