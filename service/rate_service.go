package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"calculator-api/domain"
	"calculator-api/repository"
)

const ratesCacheKey = "rates:usd"

// staticUSDPrices is the fallback table used when remote rates are disabled
// or unavailable.
var staticUSDPrices = map[string]float64{
	"USD":  1,
	"EUR":  1.08,
	"GBP":  1.27,
	"JPY":  0.0067,
	"INR":  0.012,
	"BTC":  65000,
	"ETH":  3500,
	"USDT": 1,
	"BNB":  580,
	"SOL":  150,
	"XRP":  0.52,
	"ADA":  0.45,
	"DOGE": 0.15,
	"LTC":  80,
}

// coinIDs maps symbols to the remote provider's asset IDs. Fiat stays static.
var coinIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"USDT": "tether",
	"BNB":  "binancecoin",
	"SOL":  "solana",
	"XRP":  "ripple",
	"ADA":  "cardano",
	"DOGE": "dogecoin",
	"LTC":  "litecoin",
}

type RateConfig struct {
	RemoteEnabled bool
	APIURL        string
	TTL           time.Duration
	Timeout       time.Duration
	MaxRetries    int
}

// RateService supplies USD prices, preferring a cached or remote table and
// falling back to the static one.
type RateService struct {
	apiURL     string
	enabled    bool
	ttl        time.Duration
	maxRetries int
	httpClient *http.Client
	cache      repository.CacheRepository
	now        func() time.Time
}

func NewRateService(cfg RateConfig, cache repository.CacheRepository) *RateService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RateService{
		apiURL:     cfg.APIURL,
		enabled:    cfg.RemoteEnabled && cfg.APIURL != "",
		ttl:        cfg.TTL,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		now:        time.Now,
	}
}

// Rates never fails: remote and cache errors are logged and the static table returned.
func (s *RateService) Rates(ctx context.Context) domain.RateTable {
	if !s.enabled {
		return s.staticTable()
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, ratesCacheKey); ok {
			var table domain.RateTable
			if err := json.Unmarshal([]byte(cached), &table); err == nil {
				return table
			}
			slog.Warn("discarding unreadable cached rates")
		}
	}

	table, err := s.fetchRemote(ctx)
	if err != nil {
		slog.Warn("remote rate fetch failed, using static rates", "error", err)
		return s.staticTable()
	}

	if s.cache != nil {
		if data, err := json.Marshal(table); err == nil {
			if err := s.cache.Set(ctx, ratesCacheKey, string(data), s.ttl); err != nil {
				slog.Warn("failed to cache rates", "error", err)
			}
		}
	}
	return table
}

func (s *RateService) staticTable() domain.RateTable {
	prices := make(map[string]float64, len(staticUSDPrices))
	for k, v := range staticUSDPrices {
		prices[k] = v
	}
	return domain.RateTable{Prices: prices, Source: "static", AsOf: s.now().UTC()}
}

// fetchRemote queries a simple-price endpoint answering
// {"bitcoin":{"usd":65000.1}, ...} and overlays the result on the static table.
func (s *RateService) fetchRemote(ctx context.Context) (domain.RateTable, error) {
	ids := make([]string, 0, len(coinIDs))
	for _, id := range coinIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	u, err := url.Parse(s.apiURL)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("parsing rate API URL: %w", err)
	}
	q := u.Query()
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", "usd")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.RateTable{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := doWithRetry(ctx, s.httpClient, req, s.maxRetries)
	if err != nil {
		return domain.RateTable{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.RateTable{}, fmt.Errorf("rate API error (status %d): %s", resp.StatusCode, string(body))
	}

	var payload map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.RateTable{}, fmt.Errorf("decoding rate API response: %w", err)
	}

	table := s.staticTable()
	updated := 0
	for symbol, id := range coinIDs {
		if price, ok := payload[id]["usd"]; ok && price > 0 && isFinite(price) {
			table.Prices[symbol] = price
			updated++
		}
	}
	if updated == 0 {
		return domain.RateTable{}, fmt.Errorf("rate API returned no usable prices")
	}
	table.Source = "remote"
	return table, nil
}
