// Package main provides the shipyard binary entry point.
// Shipyard builds the smart-shipyard ontology graph, runs analytics over
// it, and exports or publishes the result.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/c360studio/semstreams/payloadregistry"

	"github.com/c360studio/shipyard/config"
	"github.com/c360studio/shipyard/export"
	"github.com/c360studio/shipyard/graph"
	"github.com/c360studio/shipyard/metrics"
	"github.com/c360studio/shipyard/ontology"
	"github.com/c360studio/shipyard/population"
	"github.com/c360studio/shipyard/report"
	"github.com/c360studio/shipyard/storage"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "shipyard"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath  string
	outputPath  string
	format      string
	natsURL     string
	metricsAddr string
	logLevel    string
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "shipyard",
		Short: "Smart-shipyard ontology toolkit",
		Long: `Shipyard models a smart shipyard as a typed ontology graph:
vessels under construction, facilities, equipment, IoT sensors, the
workforce, manufacturing processes, materials, and digital systems.

Running without a subcommand builds the sample yard, prints the status
report, and optionally exports RDF or publishes to the knowledge graph.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}

	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "RDF output file path")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "RDF format (turtle, ntriples, jsonld)")
	cmd.Flags().StringVar(&f.natsURL, "nats-url", "", "NATS URL for knowledge-graph publishing")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "Listen address for Prometheus metrics")

	cmd.AddCommand(reportCmd(&f))
	cmd.AddCommand(exportCmd(&f))
	cmd.AddCommand(serveCmd(&f))
	cmd.AddCommand(historyCmd(&f))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func reportCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the yard status report",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, cfg, err := buildYard(*f)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), g, thresholdsFrom(cfg))
		},
	}
}

func exportCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the yard graph as RDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, cfg, err := buildYard(*f)
			if err != nil {
				return err
			}

			format, ok := export.ParseFormat(cfg.Export.Format)
			if !ok {
				return fmt.Errorf("unsupported format %q", cfg.Export.Format)
			}

			exporter := export.FromGraph(g)
			if cfg.Export.Path == "" {
				out, err := exporter.Export(format)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}
			if err := exporter.WriteFile(cfg.Export.Path, format); err != nil {
				return err
			}
			slog.Info("Exported RDF", "path", cfg.Export.Path, "format", format)
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "RDF output file path")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "RDF format (turtle, ntriples, jsonld)")
	return cmd
}

func serveCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve yard KPIs as Prometheus metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, cfg, err := buildYard(*f)
			if err != nil {
				return err
			}

			addr := cfg.Metrics.Addr
			if addr == "" {
				addr = ":9090"
			}

			collector := metrics.NewCollector()
			collector.Update(g)

			mux := http.NewServeMux()
			mux.Handle("/metrics", collector.Handler())
			server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				slog.Info("Serving metrics", "addr", addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "Listen address for Prometheus metrics")
	return cmd
}

func historyCmd(f *flags) *cobra.Command {
	var sensorID, componentID string

	cmd := &cobra.Command{
		Use:   "history [record-id]",
		Short: "Inspect the yard archive",
		Long: `History reads back the NATS KV archive written by the default run:
KPI snapshots, sensor readings, and component inspections.

Without arguments it lists archived snapshots. A record ID argument
(e.g. snapshot:<uuid>, reading:<uuid>, inspection:<uuid>) fetches one
record; --sensor and --component filter readings and inspections.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*f)
			if err != nil {
				return err
			}
			if cfg.NATS.URL == "" {
				return fmt.Errorf("history requires a NATS URL (--nats-url or config)")
			}

			ctx := cmd.Context()
			nc, err := connectToNATS(ctx, cfg.NATS.URL)
			if err != nil {
				return err
			}
			defer nc.Close(ctx)

			js, err := nc.JetStream()
			if err != nil {
				return fmt.Errorf("jetstream context: %w", err)
			}
			store, err := storage.NewStore(ctx, js)
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}

			out := cmd.OutOrStdout()
			switch {
			case len(args) == 1:
				return printRecord(ctx, out, store, args[0])
			case sensorID != "":
				readings, err := store.ListReadingsBySensor(ctx, sensorID)
				if err != nil {
					return err
				}
				for _, r := range readings {
					fmt.Fprintf(out, "%s %s=%.2f at %s\n", r.ID, r.SensorID, r.Value, r.Timestamp.Format(time.RFC3339))
				}
				return nil
			case componentID != "":
				insp, err := store.GetInspectionByComponent(ctx, componentID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s score=%.1f passed=%t inspector=%q\n",
					insp.ID, insp.ComponentID, insp.Score, insp.Passed, insp.Inspector)
				return nil
			default:
				snapshots, err := store.ListSnapshots(ctx)
				if err != nil {
					return err
				}
				for _, snap := range snapshots {
					fmt.Fprintf(out, "%s at %s: %d vessels, %d processes\n",
						snap.ID, snap.CreatedAt.Format(time.RFC3339), snap.Counts.Vessels, snap.Counts.Processes)
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&f.natsURL, "nats-url", "", "NATS URL for the archive")
	cmd.Flags().StringVar(&sensorID, "sensor", "", "List readings for a sensor ID")
	cmd.Flags().StringVar(&componentID, "component", "", "Show the latest inspection for a component ID")
	return cmd
}

// printRecord fetches a single archive record by its typed ID.
func printRecord(ctx context.Context, out io.Writer, store *storage.Store, raw string) error {
	id, err := storage.ParseRecordID(raw)
	if err != nil {
		return err
	}

	switch id.Type {
	case storage.RecordTypeSnapshot:
		snap, err := store.GetSnapshot(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "snapshot %s at %s\n", snap.ID, snap.CreatedAt.Format(time.RFC3339))
		if snap.AverageCompletion != nil {
			fmt.Fprintf(out, "  average completion: %.1f%%\n", *snap.AverageCompletion)
		}
		if snap.EquipmentUtilization != nil {
			fmt.Fprintf(out, "  equipment utilization: %.1f%%\n", *snap.EquipmentUtilization)
		}
		return nil
	case storage.RecordTypeReading:
		r, err := store.GetReading(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "reading %s: %s=%.2f at %s\n", r.ID, r.SensorID, r.Value, r.Timestamp.Format(time.RFC3339))
		return nil
	case storage.RecordTypeInspection:
		insp, err := store.GetInspection(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "inspection %s: %s score=%.1f passed=%t\n", insp.ID, insp.ComponentID, insp.Score, insp.Passed)
		return nil
	default:
		return fmt.Errorf("unknown record type: %s", id.Type)
	}
}

// run is the default pipeline: build, report, then export and publish as
// configured.
func run(ctx context.Context, f flags) error {
	g, cfg, err := buildYard(f)
	if err != nil {
		return err
	}

	if err := report.Write(os.Stdout, g, thresholdsFrom(cfg)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.Export.Path != "" {
		format, ok := export.ParseFormat(cfg.Export.Format)
		if !ok {
			return fmt.Errorf("unsupported format %q", cfg.Export.Format)
		}
		if err := export.FromGraph(g).WriteFile(cfg.Export.Path, format); err != nil {
			return err
		}
		slog.Info("Exported RDF", "path", cfg.Export.Path, "format", format)
	}

	if cfg.NATS.URL != "" {
		reg := payloadregistry.New()
		if err := graph.RegisterPayloads(reg); err != nil {
			return fmt.Errorf("register payloads: %w", err)
		}

		nc, err := connectToNATS(ctx, cfg.NATS.URL)
		if err != nil {
			return err
		}
		defer nc.Close(ctx)

		if err := graph.NewPublisher(nc).PublishGraph(ctx, g); err != nil {
			return fmt.Errorf("publish graph: %w", err)
		}
		slog.Info("Published yard to knowledge graph", "entities", g.Len())

		js, err := nc.JetStream()
		if err != nil {
			return fmt.Errorf("jetstream context: %w", err)
		}
		store, err := storage.NewStore(ctx, js)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		if err := archiveYard(ctx, store, g); err != nil {
			return err
		}
	}

	return nil
}

// archiveYard records the current KPI snapshot plus the yard's sensor
// readings and component inspections.
func archiveYard(ctx context.Context, store *storage.Store, g *ontology.Graph) error {
	id, err := store.CreateSnapshot(ctx, storage.SnapshotFromGraph(g))
	if err != nil {
		return fmt.Errorf("archive snapshot: %w", err)
	}
	slog.Info("Archived KPI snapshot", "id", id.String())

	for _, r := range storage.ReadingsFromGraph(g) {
		if _, err := store.AppendReading(ctx, r); err != nil {
			return fmt.Errorf("archive reading for %s: %w", r.SensorID, err)
		}
	}
	for _, insp := range storage.InspectionsFromGraph(g) {
		if _, err := store.CreateInspection(ctx, insp); err != nil {
			return fmt.Errorf("archive inspection for %s: %w", insp.ComponentID, err)
		}
	}
	return nil
}

// loadConfig loads config and applies flag overrides.
func loadConfig(f flags) (*config.Config, error) {
	logger := newLogger(f.logLevel)
	slog.SetDefault(logger)

	var cfg *config.Config
	var err error
	if f.configPath != "" {
		cfg, err = config.LoadFromFile(f.configPath)
		if err == nil {
			err = cfg.Validate()
		}
	} else {
		cfg, err = config.NewLoader(logger).Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if f.outputPath != "" {
		cfg.Export.Path = f.outputPath
	}
	if f.format != "" {
		cfg.Export.Format = f.format
	}
	if f.natsURL != "" {
		cfg.NATS.URL = f.natsURL
	}
	if f.metricsAddr != "" {
		cfg.Metrics.Addr = f.metricsAddr
	}
	return cfg, nil
}

func thresholdsFrom(cfg *config.Config) report.Thresholds {
	return report.Thresholds{
		Completion: cfg.Thresholds.Completion,
		Experience: cfg.Thresholds.Experience,
	}
}

// buildYard loads config, applies flag overrides, and constructs the
// populated sample graph.
func buildYard(f flags) (*ontology.Graph, *config.Config, error) {
	cfg, err := loadConfig(f)
	if err != nil {
		return nil, nil, err
	}

	schema, err := ontology.NewSchema()
	if err != nil {
		return nil, nil, fmt.Errorf("build schema: %w", err)
	}

	g := ontology.NewGraph(schema)
	if err := population.Populate(g); err != nil {
		return nil, nil, fmt.Errorf("populate yard: %w", err)
	}

	slog.Debug("Yard constructed", "individuals", g.Len(), "edges", g.EdgeCount())
	return g, cfg, nil
}

func newLogger(level string) *slog.Logger {
	l := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func connectToNATS(ctx context.Context, url string) (*natsclient.Client, error) {
	if envURL := os.Getenv("SHIPYARD_NATS_URL"); envURL != "" {
		url = envURL
	}

	slog.Info("Connecting to NATS", "url", url)

	client, err := natsclient.NewClient(url,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}

	return client, nil
}
