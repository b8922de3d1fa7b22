// Package yahoo provides a PriceSource backed by the Yahoo Finance chart API
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"golang.org/x/time/rate"

	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/interfaces"
	"github.com/bobmcallan/greenvest/internal/models"
)

const (
	DefaultLookbackDays = 30
	DefaultTimeout      = 30 * time.Second
	DefaultRateLimit    = 2 // requests per second
	DefaultRetries      = 3
)

// BarFetcher loads daily bars for a ticker between start and end
type BarFetcher func(symbol string, start, end time.Time) ([]*finance.ChartBar, error)

// Source implements interfaces.PriceSource
type Source struct {
	symbols    map[string]string
	lookback   int
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	limiter    *rate.Limiter
	logger     *common.Logger
	fetch      BarFetcher
	now        func() time.Time
}

// Option configures the source
type Option func(*Source)

// WithSymbols maps fund ids to exchange tickers
func WithSymbols(symbols map[string]string) Option {
	return func(s *Source) {
		for id, sym := range symbols {
			s.symbols[id] = sym
		}
	}
}

// WithLookbackDays sets how many trading days of closes are returned
func WithLookbackDays(days int) Option {
	return func(s *Source) {
		if days > 1 {
			s.lookback = days
		}
	}
}

// WithTimeout bounds each fetch attempt
func WithTimeout(timeout time.Duration) Option {
	return func(s *Source) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// WithFetcher replaces the chart API call
func WithFetcher(fetch BarFetcher) Option {
	return func(s *Source) {
		s.fetch = fetch
	}
}

// WithRetryDelay sets the base delay between attempts; it doubles per retry
func WithRetryDelay(d time.Duration) Option {
	return func(s *Source) {
		s.retryDelay = d
	}
}

// New creates a Yahoo Finance price source
func New(opts ...Option) *Source {
	s := &Source{
		symbols:    make(map[string]string),
		lookback:   DefaultLookbackDays,
		timeout:    DefaultTimeout,
		retries:    DefaultRetries,
		retryDelay: time.Second,
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:     common.NewSilentLogger(),
		fetch:      fetchChart,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the feed
func (s *Source) Name() string { return "yahoo" }

// GetPriceHistory fetches the most recent lookback daily closes for a mapped fund
func (s *Source) GetPriceHistory(ctx context.Context, fundID string) (*models.PriceHistory, error) {
	symbol, ok := s.symbols[fundID]
	if !ok || symbol == "" {
		return nil, fmt.Errorf("%w: no yahoo symbol for %s", interfaces.ErrFundNotFound, fundID)
	}

	end := s.now().UTC()
	// weekends and holidays: request twice the calendar span and keep the tail
	start := end.AddDate(0, 0, -2*s.lookback)

	var bars []*finance.ChartBar
	var lastErr error
	for attempt := 0; attempt < s.retries; attempt++ {
		if attempt > 0 {
			delay := s.retryDelay * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		bars, lastErr = s.fetchWithTimeout(ctx, symbol, start, end)
		if lastErr == nil {
			break
		}
		if errors.Is(lastErr, context.Canceled) {
			return nil, lastErr
		}
		s.logger.Warn().Err(lastErr).Str("symbol", symbol).Int("attempt", attempt+1).Msg("Yahoo chart fetch failed")
	}
	if lastErr != nil {
		return nil, fmt.Errorf("failed to get chart for %s after %d attempts: %w", symbol, s.retries, lastErr)
	}

	points := make([]models.PricePoint, 0, len(bars))
	for _, bar := range bars {
		if p, ok := barPoint(bar); ok {
			points = append(points, p)
		}
	}
	if len(points) > s.lookback {
		points = points[len(points)-s.lookback:]
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no closes returned for %s", symbol)
	}

	s.logger.Debug().Str("fund", fundID).Str("symbol", symbol).Int("points", len(points)).Msg("Yahoo chart loaded")
	return &models.PriceHistory{FundID: fundID, Source: s.Name(), Points: points}, nil
}

func (s *Source) fetchWithTimeout(ctx context.Context, symbol string, start, end time.Time) ([]*finance.ChartBar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		bars []*finance.ChartBar
		err  error
	}
	done := make(chan result, 1)
	go func() {
		bars, err := s.fetch(symbol, start, end)
		done <- result{bars, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.bars, r.err
	}
}

// barPoint converts a chart bar, dropping bars without a close
func barPoint(bar *finance.ChartBar) (models.PricePoint, bool) {
	if bar == nil {
		return models.PricePoint{}, false
	}
	closePrice, _ := bar.Close.Float64()
	if closePrice <= 0 {
		return models.PricePoint{}, false
	}
	date := time.Unix(int64(bar.Timestamp), 0).UTC().Truncate(24 * time.Hour)
	return models.PricePoint{Date: date, Close: closePrice}, true
}

// fetchChart calls the chart endpoint with daily bars
func fetchChart(symbol string, start, end time.Time) ([]*finance.ChartBar, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)
	var bars []*finance.ChartBar
	for iter.Next() {
		bars = append(bars, iter.Bar())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return bars, nil
}
