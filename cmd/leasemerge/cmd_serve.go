package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/leasemerge-go/internal/server"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload-and-merge HTTP API",
	Long: `Starts an HTTP server with:
  POST /merge     multipart "document" + "workbook"; ?format=xlsx downloads the result
  POST /extract   multipart "document"
  GET  /history   merges performed since the server started
  GET  /healthz`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	srvCfg := cfg.Server
	if serveAddr != "" {
		srvCfg.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := leasemerge.NewPipeline(auditLog, cfg.MergeOptions(logger))
	return server.New(p, srvCfg, logger).Run(ctx)
}
