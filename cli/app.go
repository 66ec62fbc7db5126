package cli

import (
	"context"
	"fmt"
	"log/slog"

	"calculator-api/config"
	"calculator-api/repository"
	"calculator-api/service"
)

// app holds the wired services for one command run.
type app struct {
	calculators *service.CalculatorService
	rates       *service.RateService
	sitemaps    *service.SitemapService
	closers     []func() error
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	a := &app{}

	var history repository.CalculationRepository
	switch cfg.History.Driver {
	case "sqlite":
		repo, err := repository.NewSQLiteCalculationRepository(cfg.History.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open history store: %w", err)
		}
		history = repo
	default:
		history = repository.NewCalculationRepositoryMemory(cfg.History.MemoryCapacity)
	}
	a.closers = append(a.closers, history.Close)

	var cache repository.CacheRepository
	switch cfg.Cache.Driver {
	case "redis":
		redisCache := repository.NewRedisCache(cfg.Cache.RedisAddr)
		if err := redisCache.Ping(ctx); err != nil {
			a.Close()
			redisCache.Close()
			return nil, err
		}
		a.closers = append(a.closers, redisCache.Close)
		cache = redisCache
	default:
		cache = repository.NewMemoryCache()
	}

	a.rates = service.NewRateService(service.RateConfig{
		RemoteEnabled: cfg.Rates.RemoteEnabled,
		APIURL:        cfg.Rates.APIURL,
		TTL:           cfg.Rates.TTL,
		Timeout:       cfg.Rates.Timeout,
		MaxRetries:    cfg.Rates.MaxRetries,
	}, cache)
	a.calculators = service.NewCalculatorService(history, a.rates)

	tools, err := service.LoadCatalogFile(cfg.Sitemap.Catalog, cfg.Sitemap.BaseURL)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.sitemaps = service.NewSitemapService(cfg.Sitemap.BaseURL, tools)

	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("error closing resource", "error", err)
		}
	}
}
