package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"naradamuni/internal/config"
	"naradamuni/internal/controller"
	"naradamuni/internal/metrics"
	"naradamuni/internal/models"
	"naradamuni/internal/repository"
	"naradamuni/internal/routes"
	"naradamuni/internal/service"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the ingestion and metrics HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if verbose {
				cfg.LogReadings = true
			}

			handler, err := buildHandler(cfg)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:         cfg.Addr(),
				Handler:      handler,
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
			}
			log.Printf("Listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil {
				return fmt.Errorf("error starting server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "Interface to bind (overrides HOST)")
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to bind (overrides PORT)")
	return cmd
}

// buildHandler wires store, registry, exporter and routes for one process.
func buildHandler(cfg config.Config) (http.Handler, error) {
	store := repository.NewReadingStore(models.DefaultReading())

	registry, err := metrics.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("error creating metrics registry: %w", err)
	}

	ctrl := controller.NewReadingController(
		service.NewIngestService(store, cfg.LogReadings),
		metrics.NewExporter(store, registry),
	)
	return routes.NewHandler(ctrl), nil
}
