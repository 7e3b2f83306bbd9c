package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/markcheno/go-quote"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type fetchFunc func(symbol, startDate, endDate string, period quote.Period, adjustQuote bool) (quote.Quote, error)

// YahooOptions holds options for creating YahooProvider
type YahooOptions struct {
	Adjust         bool
	RequestsPerSec int
	MaxRetryTime   time.Duration
}

// YahooProvider downloads daily quotes from Yahoo with rate limiting and retries
type YahooProvider struct {
	adjust       bool
	limiter      *rate.Limiter
	maxRetryTime time.Duration
	fetch        fetchFunc
}

// NewYahooProvider creates YahooProvider
func NewYahooProvider(opts YahooOptions) *YahooProvider {
	if opts.RequestsPerSec == 0 {
		opts.RequestsPerSec = 2
	}
	if opts.MaxRetryTime == 0 {
		opts.MaxRetryTime = 30 * time.Second
	}

	return &YahooProvider{
		adjust:       opts.Adjust,
		limiter:      rate.NewLimiter(rate.Every(time.Second), opts.RequestsPerSec),
		maxRetryTime: opts.MaxRetryTime,
		fetch:        quote.NewQuoteFromYahoo,
	}
}

// Name is "yahoo"
func (y *YahooProvider) Name() string { return ProviderYahoo }

// GetStockData downloads daily stockdata for symbol(GOOGL, FB...etc) during start ~ end.
// An unknown symbol yields an error instead of an empty quote.
func (y *YahooProvider) GetStockData(ctx context.Context, symbol string, start, end time.Time) (*quote.Quote, error) {
	if err := y.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var q quote.Quote
	operation := func() error {
		var err error
		q, err = y.fetch(symbol, start.Format(timeFormat), end.Format(timeFormat), quote.Daily, y.adjust)
		if err != nil {
			logrus.Warnf("yahoo download error, symbol: %v, error: %v", symbol, err)
			return err
		}
		if len(q.Date) == 0 {
			return backoff.Permanent(fmt.Errorf("no price history for symbol: %s", symbol))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = y.maxRetryTime

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return &q, nil
}
