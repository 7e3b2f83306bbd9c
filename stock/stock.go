package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/jumpei00/gostocksignal/config"
	"github.com/markcheno/go-quote"
)

const timeFormat = "2006-01-02"

// provider names used in config.ini
const (
	ProviderYahoo   = "yahoo"
	ProviderArchive = "archive"
)

// Provider downloads daily price history of a symbol between start and end
type Provider interface {
	Name() string
	GetStockData(ctx context.Context, symbol string, start, end time.Time) (*quote.Quote, error)
}

// NewProvider returns the provider configured in conf
func NewProvider(conf config.ConfList) (Provider, error) {
	switch conf.Provider {
	case ProviderYahoo, "":
		return NewYahooProvider(YahooOptions{
			Adjust:         conf.Adjust,
			RequestsPerSec: conf.RequestsPerSec,
			MaxRetryTime:   time.Duration(conf.MaxRetrySec) * time.Second,
		}), nil
	case ProviderArchive:
		return NewArchiveProvider(conf.Archive)
	default:
		return nil, fmt.Errorf("unknown stock provider: %s", conf.Provider)
	}
}

// GetStockDataForDays downloads dayPeriod days of history ending today
func GetStockDataForDays(ctx context.Context, p Provider, symbol string, dayPeriod int) (*quote.Quote, error) {
	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -dayPeriod)
	return p.GetStockData(ctx, symbol, startDay, endDay)
}
