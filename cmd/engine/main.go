package main

import (
	"context"
	"os"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/logging"
	"jobscrape-engine/internal/render"
	"jobscrape-engine/internal/scrape"
	"jobscrape-engine/internal/scrape/pracuj"
	"jobscrape-engine/internal/sink"
	"jobscrape-engine/internal/store"
)

func main() {
	logger := logging.New("jobscrape", os.Stderr)

	config.LoadDotEnv()
	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("config load failed", "path", cfgPath, "err", err)
	}
	if err := config.OverlayEnv(&cfg); err != nil {
		logger.Fatal("config env overlay failed", "err", err)
	}
	cfg, v := config.NormalizeAndValidate(cfg)
	for _, w := range v.Warnings {
		logger.Warn(w)
	}
	if !v.OK() {
		logger.Fatal(v.Error())
	}

	launcher, stop, err := newLauncher(cfg)
	if err != nil {
		logger.Fatal("renderer setup failed", "renderer", cfg.Renderer, "err", err)
	}
	defer stop()

	extractor := pracuj.New(pracuj.DefaultSelectors(), logging.Named(logger, "pracuj"))
	limiter := render.NewHostLimiter(cfg.RequestsPerSecond, cfg.Burst)
	coord := scrape.NewCoordinator(launcher, extractor, limiter, logging.Named(logger, "fetch"))

	ctx := context.Background()
	logger.Info("starting", "urls", len(cfg.URLs), "concurrency", cfg.Concurrency, "renderer", cfg.Renderer)

	records, err := coord.Run(ctx, cfg.URLs, cfg.Concurrency)
	if err != nil {
		logger.Fatal("run failed", "err", err)
	}
	logger.Info("run finished", "listings", len(records))

	// Write failures are logged by the sink; the exit code stays 0.
	_ = sink.NewCSVWriter(logging.Named(logger, "csv")).Write(records, cfg.OutputPath)

	if cfg.SQLitePath != "" {
		mirror(ctx, logging.Named(logger, "sqlite"), cfg.SQLitePath, records)
	}
}

func newLauncher(cfg config.Config) (render.Launcher, func(), error) {
	opts := render.Options{
		Timeout:     cfg.RenderTimeout(),
		ScrollCount: cfg.ScrollCount,
		ScrollPause: cfg.ScrollPause(),
	}

	switch cfg.Renderer {
	case config.RendererPlaywright:
		pl, err := render.NewPlaywright(opts)
		if err != nil {
			return nil, nil, err
		}
		return pl, func() { _ = pl.Stop() }, nil
	default:
		return render.NewChromedp(opts), func() {}, nil
	}
}

func mirror(ctx context.Context, logger logging.Logger, path string, records []domain.JobRecord) {
	db, err := store.Open(path)
	if err != nil {
		logger.Error("open failed", "path", path, "err", err)
		return
	}
	defer db.Close()

	added, err := store.SaveRecords(ctx, db.Pool, records)
	if err != nil {
		logger.Error("save failed", "path", path, "err", err)
		return
	}
	logger.Info("mirrored", "path", path, "new", added, "total", len(records))
}
