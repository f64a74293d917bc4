package main

import (
	"github.com/spf13/cobra"

	"github.com/Apshaya/RES-Checker/internal/config"
	"github.com/Apshaya/RES-Checker/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume and job analysis, matching, recommendations and interview preparation.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveUseBrowser bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	srv := server.New(server.Config{
		Port:       servePort,
		UseBrowser: serveUseBrowser,
	})
	return srv.Start()
}
