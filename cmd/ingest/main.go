package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	json "github.com/goccy/go-json"

	"github.com/redmage123/course-creator-sub021/internal/config"
	"github.com/redmage123/course-creator-sub021/internal/domain"
	"github.com/redmage123/course-creator-sub021/internal/graph"
	"github.com/redmage123/course-creator-sub021/internal/logging"
	"github.com/redmage123/course-creator-sub021/internal/repository"
	"github.com/redmage123/course-creator-sub021/internal/service"
)

var errMissingCatalog = errors.New("catalog not found")

func main() {
	var (
		datasetDir  = flag.String("dataset-dir", "./seed-data", "Directory containing catalog.json")
		catalogPath = flag.String("catalog", "", "Path to catalog.json (overrides dataset-dir)")
		workers     = flag.Int("workers", 4, "Number of concurrent workers for ingestion")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "ingest")

	catalogFile, err := resolveCatalogPath(*datasetDir, *catalogPath)
	if err != nil {
		logger.Error("catalog resolution failed", "error", err)
		os.Exit(1)
	}

	catalog, err := loadCatalog(catalogFile)
	if err != nil {
		logger.Error("failed to load catalog", "error", err, "path", catalogFile)
		os.Exit(1)
	}
	if len(catalog.Courses) == 0 {
		logger.Error("catalog has no courses", "path", catalogFile)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	graphClient, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(graphClient)
	ingestor := service.NewCatalogIngestor(repo, *workers)

	start := time.Now()
	logger.Info("ingesting catalog",
		"courses", len(catalog.Courses),
		"prerequisites", len(catalog.Prerequisites),
		"workers", *workers,
	)
	if err := ingestor.IngestCatalog(ctx, catalog); err != nil {
		logger.Error("catalog ingestion failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ingestion complete",
		"duration", time.Since(start).String(),
		"courses", len(catalog.Courses),
		"prerequisites", len(catalog.Prerequisites),
	)
}

func resolveCatalogPath(baseDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("stat %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}
	path := filepath.Join(baseDir, "catalog.json")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", errMissingCatalog, path)
	}
	return path, nil
}

func loadCatalog(path string) (domain.Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var catalog domain.Catalog
	if err := json.NewDecoder(file).Decode(&catalog); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return catalog, nil
}

func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) (graph.Client, error) {
	if cfg.Graph.URI == "" {
		return nil, fmt.Errorf("GRAPH_URI is required for ingestion")
	}
	opts := graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	}
	client, err := graph.NewNeo4jClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.VerifyConnectivity(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, err
	}
	logger.Info("connected to graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return client, nil
}
