package main

import (
	"github.com/go-ricrob/recursivesolver/internal/config"
	"github.com/go-ricrob/recursivesolver/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(cfg func() *config.Config) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve the solver over HTTP.

Routes:
  GET  /api/v1/health
  POST /api/v1/solve      {"puzzle": "...", "max_moves": 6, "all_solutions": false}
  POST /api/v1/visualize  {"puzzle": "...", "max_moves": 4}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c := cfg()
			return server.NewRouter(server.Config{
				Addr:       c.Addr,
				BaseURL:    "/api",
				MaxMoves:   c.MaxMoves,
				StartDepth: c.StartDepth,

				MaxMovesLimit: c.MaxMovesLimit,
			}).Run()
		},
	}
	serveCmd.Flags().String(config.KeyAddr, ":8080", "Listen address")
	serveCmd.Flags().Int(config.KeyMaxMovesLimit, config.DefaultMaxMovesLimit, "Largest number of moves a request may search")
	return serveCmd
}
