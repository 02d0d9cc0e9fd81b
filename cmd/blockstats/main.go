package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/analysis"
	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/api"
	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/render"
	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/service"
	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	APIURL      string        `long:"api-url" env:"BLOCKSTATS_API_URL" description:"block explorer API base URL" required:"true"`
	StartBlock  uint64        `long:"start-block" env:"BLOCKSTATS_START_BLOCK" description:"first block number (inclusive)" required:"true"`
	EndBlock    uint64        `long:"end-block" env:"BLOCKSTATS_END_BLOCK" description:"last block number (inclusive)" required:"true"`
	TxIDs       []string      `long:"tx" env:"BLOCKSTATS_TX" env-delim:"," description:"transaction id to look up (repeatable)"`
	OutputDir   string        `long:"output-dir" env:"BLOCKSTATS_OUTPUT_DIR" description:"directory for chart files" default:"."`
	HTTPTimeout time.Duration `long:"http-timeout" env:"BLOCKSTATS_HTTP_TIMEOUT" description:"HTTP timeout for API requests" default:"30s"`
	MetricsAddr string        `long:"metrics-addr" env:"BLOCKSTATS_METRICS_ADDR" description:"address for metrics server, disabled when empty"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("blockstats failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		_, stopMetrics, err := startMetricsServer(cfg.MetricsAddr, logger.Named("metrics"))
		if err != nil {
			return err
		}
		defer stopMetrics()
	}

	host := apiHost(cfg.APIURL)
	client, err := api.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.HTTPTimeout}, metrics.NewAPIClient(host))
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	collector, err := service.NewCollector(client, metrics.NewRangeCollector(host), logger.Named("collector"))
	if err != nil {
		return err
	}

	for _, txID := range cfg.TxIDs {
		tx, ok, err := collector.FetchTransaction(ctx, txID)
		if err != nil {
			return err
		}
		if ok {
			logger.Info("transaction", zap.String("tx", txID), zap.Any("record", tx))
		}
	}

	table, err := collector.FetchRange(ctx, cfg.StartBlock, cfg.EndBlock)
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(logger.Named("analysis"))
	renderer := render.NewRenderer(cfg.OutputDir, logger.Named("render"))

	if _, err := renderer.RenderVolume(analyzer.VolumeByBlock(table)); err != nil {
		return err
	}
	generation := analyzer.GenerationTimes(table)
	if generation.OutOfOrder > 0 {
		logger.Warn("blocks with non-monotonic timestamps", zap.Int("count", generation.OutOfOrder))
	}
	if _, err := renderer.RenderGenerationTimes(generation); err != nil {
		return err
	}
	return nil
}

func apiHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}

// startMetricsServer binds addr synchronously and serves until stop is called.
func startMetricsServer(addr string, logger *zap.Logger) (string, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("listen metrics %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	bound := ln.Addr().String()
	logger.Info("serving metrics for the duration of the run", zap.String("addr", bound))
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}
	return bound, stop, nil
}
