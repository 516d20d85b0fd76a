package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doc-insight/internal/api"
	"github.com/pdiddy/doc-insight/internal/collection"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis pipeline over HTTP",
	Long: `Serve exposes the collection analysis pipeline as a JSON API:
listing collections, triggering single or batch analysis, and fetching
results. The server holds no state beyond the collection directories on
disk.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if !cmd.Flags().Changed("addr") {
		if v := viper.GetString("server.addr"); v != "" {
			addr = v
		}
	}

	layout := layoutFromFlags(cmd)
	cfg := analysisFromFlags(cmd)
	logger := newLogger()

	analyzer := collection.NewAnalyzer(cfg, layout, nil, logger)
	server := api.NewServer(analyzer, layout, logger)
	return server.ListenAndServe(addr)
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("base-dir", "", "directory containing collections")

	rootCmd.AddCommand(serveCmd)
}
