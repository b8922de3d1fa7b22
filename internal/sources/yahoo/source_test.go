package yahoo

import (
	"context"
	"errors"
	"testing"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/greenvest/internal/interfaces"
)

func bar(day time.Time, price string) *finance.ChartBar {
	return &finance.ChartBar{
		Close:     decimal.RequireFromString(price),
		Timestamp: int(day.Unix()),
	}
}

func TestSource_GetPriceHistory(t *testing.T) {
	day := time.Date(2026, 2, 2, 14, 30, 0, 0, time.UTC)
	var gotSymbol string
	fetch := func(symbol string, start, end time.Time) ([]*finance.ChartBar, error) {
		gotSymbol = symbol
		assert.True(t, start.Before(end))
		return []*finance.ChartBar{
			bar(day, "21.50"),
			bar(day.AddDate(0, 0, 1), "0"), // missing close
			bar(day.AddDate(0, 0, 2), "21.75"),
			bar(day.AddDate(0, 0, 3), "22.10"),
		}, nil
	}

	s := New(
		WithSymbols(map[string]string{"wind-energy": "FAN"}),
		WithLookbackDays(2),
		WithFetcher(fetch),
	)
	h, err := s.GetPriceHistory(context.Background(), "wind-energy")
	require.NoError(t, err)

	assert.Equal(t, "FAN", gotSymbol)
	assert.Equal(t, "yahoo", h.Source)
	assert.Equal(t, []float64{21.75, 22.10}, []float64(h.Closes()))
	assert.Equal(t, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), h.Points[1].Date)
}

func TestSource_UnmappedFund(t *testing.T) {
	_, err := New().GetPriceHistory(context.Background(), "wind-energy")
	assert.ErrorIs(t, err, interfaces.ErrFundNotFound)
}

func TestSource_RetriesThenSucceeds(t *testing.T) {
	calls := 0
	fetch := func(symbol string, start, end time.Time) ([]*finance.ChartBar, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("502 bad gateway")
		}
		return []*finance.ChartBar{bar(time.Now(), "10"), bar(time.Now(), "11")}, nil
	}

	s := New(WithSymbols(map[string]string{"solar-power": "TAN"}), WithFetcher(fetch), WithRetryDelay(time.Millisecond))
	h, err := s.GetPriceHistory(context.Background(), "solar-power")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, h.Points, 2)
}

func TestSource_GivesUpAfterRetries(t *testing.T) {
	calls := 0
	fetch := func(symbol string, start, end time.Time) ([]*finance.ChartBar, error) {
		calls++
		return nil, errors.New("unavailable")
	}

	s := New(WithSymbols(map[string]string{"solar-power": "TAN"}), WithFetcher(fetch), WithRetryDelay(time.Millisecond))
	_, err := s.GetPriceHistory(context.Background(), "solar-power")
	require.Error(t, err)
	assert.Equal(t, DefaultRetries, calls)
}

func TestSource_NoCloses(t *testing.T) {
	fetch := func(symbol string, start, end time.Time) ([]*finance.ChartBar, error) {
		return []*finance.ChartBar{nil, bar(time.Now(), "0")}, nil
	}
	s := New(WithSymbols(map[string]string{"recycling": "BIN"}), WithFetcher(fetch))
	_, err := s.GetPriceHistory(context.Background(), "recycling")
	assert.Error(t, err)
}

func TestSource_TimeoutPerAttempt(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	fetch := func(symbol string, start, end time.Time) ([]*finance.ChartBar, error) {
		<-release
		return nil, nil
	}
	s := New(
		WithSymbols(map[string]string{"recycling": "BIN"}),
		WithFetcher(fetch),
		WithTimeout(10*time.Millisecond),
		WithRetryDelay(time.Millisecond),
	)
	_, err := s.GetPriceHistory(context.Background(), "recycling")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
