// Package app wires GreenVest's sources, analytics engine and services together
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/robfig/cron/v3"

	"github.com/bobmcallan/greenvest/internal/analytics"
	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/interfaces"
	"github.com/bobmcallan/greenvest/internal/services/fund"
	"github.com/bobmcallan/greenvest/internal/services/investment"
	"github.com/bobmcallan/greenvest/internal/services/portfolio"
	"github.com/bobmcallan/greenvest/internal/sources/csvfeed"
	"github.com/bobmcallan/greenvest/internal/sources/sample"
	"github.com/bobmcallan/greenvest/internal/sources/yahoo"
	"github.com/bobmcallan/greenvest/internal/storage/snapshot"
)

// App holds all initialized services and the MCP server.
// It is the shared core used by cmd/greenvest-server and cmd/greenvest.
type App struct {
	Config            *common.Config
	Logger            *common.Logger
	Snapshots         *snapshot.Store
	PriceSource       interfaces.PriceSource
	Predictor         interfaces.PricePredictor
	Impact            *analytics.ImpactAnalyzer
	FundService       interfaces.FundService
	PortfolioService  interfaces.PortfolioService
	InvestmentService interfaces.InvestmentService
	MCPServer         *server.MCPServer
	StartupTime       time.Time

	scheduler       *cron.Cron
	warmCacheCancel context.CancelFunc
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// ResolveConfigPath returns configPath, GREENVEST_CONFIG, greenvest.toml beside
// the binary or config/greenvest.toml, in that order.
func ResolveConfigPath(configPath string) string {
	if configPath == "" {
		configPath = os.Getenv("GREENVEST_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "greenvest.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/greenvest.toml" // fallback for development
		}
	}
	return configPath
}

// NewApp loads configuration and initializes all services.
// configPath may be empty, in which case ResolveConfigPath applies.
func NewApp(configPath string) (*App, error) {
	config, err := common.LoadConfig(ResolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if config.Logging.FilePath != "" && !filepath.IsAbs(config.Logging.FilePath) {
		config.Logging.FilePath = filepath.Join(getBinaryDir(), config.Logging.FilePath)
	}
	logger := common.NewLoggerFromConfig(config.Logging)

	return NewAppWithConfig(config, logger)
}

// NewAppWithConfig initializes all services from an already loaded config.
func NewAppWithConfig(config *common.Config, logger *common.Logger) (*App, error) {
	startupStart := time.Now()

	catalog := sample.New(config.Analytics.Seed, startupStart)

	prices, err := newPriceSource(config, catalog, logger)
	if err != nil {
		return nil, err
	}

	store := snapshot.NewStore(config.Cache.GetSnapshotTTL(), config.Cache.MaxSize, logger)

	noise := analytics.NewNoiseSource(config.Analytics.Seed)
	engine := fund.Engine{
		Synthesizer: analytics.NewSynthesizer(analytics.SynthesizerOptions{
			RiskFreeRate:      config.Analytics.RiskFreeRate,
			AnnualizationDays: config.Analytics.AnnualizationDays,
		}),
		Predictor: analytics.NewPredictor(noise, config.Analytics.ClampScores),
		Impact:    analytics.NewImpactAnalyzer(noise),
		Insights: analytics.InsightOptions{
			ShortWindow: config.Analytics.TrendShort,
			LongWindow:  config.Analytics.TrendLong,
		},
	}

	fundService := fund.NewService(catalog, prices, catalog, store, engine, logger)
	recommender := analytics.NewRecommender(analytics.RebalancePolicy{
		MaxPortfolioRisk: config.Portfolio.MaxPortfolioRisk,
		DriftTolerance:   config.Portfolio.DriftTolerance,
	})
	portfolioService := portfolio.NewService(fundService, recommender, logger)
	investmentService := investment.NewService(fundService, recommender, logger)

	mcpServer := server.NewMCPServer(
		"greenvest",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:            config,
		Logger:            logger,
		Snapshots:         store,
		PriceSource:       prices,
		Predictor:         engine.Predictor,
		Impact:            engine.Impact,
		FundService:       fundService,
		PortfolioService:  portfolioService,
		InvestmentService: investmentService,
		MCPServer:         mcpServer,
		StartupTime:       startupStart,
	}

	a.registerTools()

	logger.Info().
		Str("prices", prices.Name()).
		Bool("clamp_scores", config.Analytics.ClampScores).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}

// newPriceSource builds the configured price feed. The sample catalogue serves
// prices when the feed is "sample".
func newPriceSource(config *common.Config, catalog *sample.Source, logger *common.Logger) (interfaces.PriceSource, error) {
	switch config.Sources.Prices {
	case "sample", "":
		return catalog, nil
	case "csv":
		return csvfeed.New(config.Sources.CSVDir), nil
	case "yahoo":
		return yahoo.New(
			yahoo.WithSymbols(config.Sources.Yahoo.Symbols),
			yahoo.WithLookbackDays(config.Sources.Yahoo.LookbackDays),
			yahoo.WithTimeout(config.Sources.Yahoo.GetTimeout()),
			yahoo.WithLogger(logger),
		), nil
	default:
		return nil, fmt.Errorf("unknown price source %q", config.Sources.Prices)
	}
}

// Close releases all resources held by the App.
// Shutdown order: stop scheduler, cancel warm cache, close snapshots.
func (a *App) Close() {
	if a.scheduler != nil {
		<-a.scheduler.Stop().Done()
		a.scheduler = nil
	}
	if a.warmCacheCancel != nil {
		a.warmCacheCancel()
		a.warmCacheCancel = nil
	}
	if a.Snapshots != nil {
		a.Snapshots.Close()
		a.Snapshots = nil
	}
}

// StartWarmCache launches the background snapshot warming goroutine.
func (a *App) StartWarmCache() {
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 5*time.Minute)
	a.warmCacheCancel = warmCancel
	go func() {
		defer warmCancel()
		warmCache(warmCtx, a.FundService, a.Logger)
	}()
}

// StartRefreshScheduler schedules snapshot refreshes on cache.refresh_schedule.
// An empty schedule leaves refreshes manual.
func (a *App) StartRefreshScheduler() error {
	spec := a.Config.Cache.RefreshSchedule
	if spec == "" {
		a.Logger.Info().Msg("Refresh scheduler: disabled")
		return nil
	}
	c, err := startRefreshScheduler(spec, a.FundService, a.Logger)
	if err != nil {
		return err
	}
	a.scheduler = c
	return nil
}
