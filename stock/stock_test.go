package stock_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jumpei00/gostocksignal/config"
	"github.com/jumpei00/gostocksignal/stock"
	"github.com/markcheno/go-quote"
	"github.com/stretchr/testify/assert"
)

func TestNewProvider(t *testing.T) {
	assert := assert.New(t)

	p, err := stock.NewProvider(config.ConfList{Provider: "yahoo"})
	assert.Nil(err)
	assert.Equal("yahoo", p.Name())

	_, err = stock.NewProvider(config.ConfList{Provider: "bloomberg"})
	assert.EqualError(err, "unknown stock provider: bloomberg")
}

func TestYahooRetry(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	yahoo := stock.NewYahooProvider(stock.YahooOptions{RequestsPerSec: 100, MaxRetryTime: 5 * time.Second}).
		WithFetch(func(symbol, startDate, endDate string, period quote.Period, adjustQuote bool) (quote.Quote, error) {
			calls++
			if calls < 2 {
				return quote.Quote{}, errors.New("connection reset")
			}
			assert.Equal("2024-01-02", startDate)
			assert.Equal("2024-03-01", endDate)
			q := quote.NewQuote(symbol, 1)
			q.Date[0] = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
			q.Close[0] = 10
			return q, nil
		})

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	q, err := yahoo.GetStockData(context.Background(), "VOO", start, start.AddDate(0, 0, 59))
	assert.Nil(err)
	assert.Equal(2, calls)
	assert.Equal("VOO", q.Symbol)
	assert.Len(q.Date, 1)
}

func TestYahooUnknownSymbol(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	yahoo := stock.NewYahooProvider(stock.YahooOptions{RequestsPerSec: 100}).
		WithFetch(func(symbol, startDate, endDate string, period quote.Period, adjustQuote bool) (quote.Quote, error) {
			calls++
			return quote.NewQuote(symbol, 0), nil
		})

	_, err := stock.GetStockDataForDays(context.Background(), yahoo, "DAMYTEST", 10)
	assert.EqualError(err, "no price history for symbol: DAMYTEST")
	// empty history is not retried
	assert.Equal(1, calls)
}

func writeArchive(t *testing.T) string {
	dir := t.TempDir()
	files := map[string]string{
		"2024_01_03.csv": "Symbol,OpenPrice,HighPrice,LowPrice,ClosePrice,Volume\nNABIL,\"1,010\",1020,1000,\"1,015.5\",\"2,000\"\nNICA,500,510,490,505,-\n",
		"2024_01_02.csv": "Symbol,OpenPrice,HighPrice,LowPrice,ClosePrice,Volume\nNABIL,990,1005,985,1000,1500\n",
		"extra.csv":      "Symbol,Date,OpenPrice,HighPrice,LowPrice,ClosePrice,Volume\nNABIL,2024/01/04,1015,1030,1010,1025,1800\n",
		"notes.txt":      "ignored",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestParseCSVFile(t *testing.T) {
	assert := assert.New(t)

	dir := writeArchive(t)
	rows, err := stock.ParseCSVFile(filepath.Join(dir, "2024_01_03.csv"))
	assert.Nil(err)
	assert.Len(rows, 2)
	assert.Equal("NABIL", rows[0]["Symbol"])
	assert.Equal("2024-01-03", rows[0]["Date"])
	assert.Equal(1010.0, rows[0]["OpenPrice"])
	assert.Equal(1015.5, rows[0]["ClosePrice"])
	assert.Equal(2000.0, rows[0]["Volume"])
	assert.Equal(0.0, rows[1]["Volume"])

	rows, err = stock.ParseCSVFile(filepath.Join(dir, "extra.csv"))
	assert.Nil(err)
	assert.Equal("2024-01-04", rows[0]["Date"])

	bad := filepath.Join(dir, "bad.csv")
	assert.Nil(os.WriteFile(bad, []byte("Symbol,ClosePrice\nNABIL,abc\n"), 0o644))
	_, err = stock.ParseCSVFile(bad)
	assert.NotNil(err)
}

func TestGetQuote(t *testing.T) {
	assert := assert.New(t)

	rows, err := stock.LoadAllCSVFiles(writeArchive(t))
	assert.Nil(err)
	assert.Len(rows, 4)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	q := stock.GetQuote("NABIL", rows, start, start.AddDate(0, 0, 10))
	assert.Equal("NABIL", q.Symbol)
	assert.Len(q.Date, 3)
	assert.Equal([]float64{1000, 1015.5, 1025}, q.Close)
	assert.True(q.Date[0].Before(q.Date[1]))

	q = stock.GetQuote("NABIL", rows, start, start.AddDate(0, 0, 1))
	assert.Len(q.Date, 1)

	q = stock.GetQuote("NICA", rows, start, start.AddDate(0, 0, 10))
	assert.Equal([]float64{505}, q.Close)
}

func TestParseCSVFileRawHeaders(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "2024-02-05.csv")
	assert.Nil(os.WriteFile(path, []byte("S.No,Symbol,Open,High,Low,Close,Vol\n1,NABIL,500,510,495,505,\"12,000\"\n"), 0o644))

	rows, err := stock.ParseCSVFile(path)
	assert.Nil(err)
	assert.Len(rows, 1)
	assert.Equal(505.0, rows[0]["ClosePrice"])
	assert.Equal(12000.0, rows[0]["Volume"])
	assert.Equal("2024-02-05", rows[0]["Date"])
}
