package stock

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/markcheno/go-quote"
	"github.com/oarkflow/convert"
	"github.com/oarkflow/errors"
	"github.com/oarkflow/log"
	"github.com/oarkflow/search"
	"golang.org/x/sync/errgroup"
)

const engineName = "stock"

// price columns of an archive csv file
var priceColumns = []string{"OpenPrice", "HighPrice", "LowPrice", "ClosePrice", "Volume"}

// headerMapping renames the headers of share price pages saved as csv
var headerMapping = map[string]string{
	"Open":  "OpenPrice",
	"High":  "HighPrice",
	"Low":   "LowPrice",
	"Close": "ClosePrice",
	"Vol":   "Volume",
	"Day":   "Date",
}

// ArchiveProvider serves price history from a directory of daily csv files,
// indexed once in a search engine
type ArchiveProvider struct {
	dir string
}

// NewArchiveProvider loads every csv file under dir and indexes it
func NewArchiveProvider(dir string) (*ArchiveProvider, error) {
	files, err := loadAllCSVFiles(dir)
	if err != nil {
		return nil, err
	}
	engine, err := search.SetEngine[map[string]any](engineName, &search.Config{})
	if err != nil {
		return nil, err
	}
	log.Info().Msg("Indexing stock")
	engine.InsertWithPool(files, runtime.NumCPU(), 1000)
	log.Info().Msg("Indexed stock")

	return &ArchiveProvider{dir: dir}, nil
}

// Name is "archive"
func (a *ArchiveProvider) Name() string { return ProviderArchive }

// GetStockData searches the indexed archive for symbol during start ~ end
func (a *ArchiveProvider) GetStockData(ctx context.Context, symbol string, start, end time.Time) (*quote.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	engine, err := search.GetEngine[map[string]any](engineName)
	if err != nil {
		return nil, err
	}
	result, err := engine.Search(&search.Params{
		Query:      symbol,
		Properties: []string{"Symbol"},
		Condition:  fmt.Sprintf("Date BETWEEN '%s' AND '%s'", start.Format(timeFormat), end.Format(timeFormat)),
	})
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(result.Hits))
	for _, hit := range result.Hits {
		rows = append(rows, hit.Data)
	}
	qt := GetQuote(symbol, rows, start, end)
	if len(qt.Date) == 0 {
		return nil, fmt.Errorf("no price history for symbol: %s", symbol)
	}
	return qt, nil
}

// GetQuote converts archive rows of symbol within start ~ end to Quote sorted by date
func GetQuote(symbol string, rows []map[string]any, start, end time.Time) *quote.Quote {
	from, to := start.Format(timeFormat), end.Format(timeFormat)

	matched := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		s, _ := row["Symbol"].(string)
		d, _ := row["Date"].(string)
		if !strings.EqualFold(s, symbol) || d < from || d > to {
			continue
		}
		matched = append(matched, row)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i]["Date"].(string) < matched[j]["Date"].(string)
	})

	qt := quote.NewQuote(symbol, len(matched))
	for i, row := range matched {
		d, _ := time.Parse(timeFormat, row["Date"].(string))
		o, _ := row["OpenPrice"].(float64)
		h, _ := row["HighPrice"].(float64)
		l, _ := row["LowPrice"].(float64)
		c, _ := row["ClosePrice"].(float64)
		v, ok := row["Volume"].(float64)
		if !ok {
			if n, ok := convert.ToInt(row["Volume"]); ok {
				v = float64(n)
			}
		}

		qt.Date[i] = d
		qt.Open[i] = o
		qt.High[i] = h
		qt.Low[i] = l
		qt.Close[i] = c
		qt.Volume[i] = v
	}
	return &qt
}

func parseFloat(value string) (float64, error) {
	value = strings.ReplaceAll(value, ",", "")
	return strconv.ParseFloat(value, 64)
}

// parseCSVFile reads one archive file. The trading day comes from the Date column,
// or from the file name (2024_01_02.csv) when the column is absent.
func parseCSVFile(filename string) ([]map[string]any, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("read %s", filename), "")
	}
	if len(records) == 0 {
		return nil, nil
	}

	fileDate := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(filename), ".csv"), "_", "-")
	header := make([]string, len(records[0]))
	for i, key := range records[0] {
		key = strings.TrimSpace(key)
		if renamed, ok := headerMapping[key]; ok {
			key = renamed
		}
		header[i] = key
	}
	mapData := make([]map[string]any, 0, len(records)-1)
	for _, record := range records[1:] {
		d := make(map[string]any, len(header))
		for i, key := range header {
			if i < len(record) {
				d[key] = strings.TrimSpace(record[i])
			}
		}

		for _, key := range priceColumns {
			val, _ := d[key].(string)
			if val == "" || val == "-" {
				d[key] = 0.0
				continue
			}
			if d[key], err = parseFloat(val); err != nil {
				return nil, errors.Wrap(err, fmt.Sprintf("%s: %v", key, val), "")
			}
		}

		date, _ := d["Date"].(string)
		if date == "" {
			date = fileDate
		}
		t, err := dateparse.ParseAny(date)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("Date: %v", date), "")
		}
		d["Date"] = t.Format(timeFormat)
		mapData = append(mapData, d)
	}
	return mapData, nil
}

func loadAllCSVFiles(directory string) ([]map[string]any, error) {
	var (
		allData []map[string]any
		mu      sync.Mutex
		g       errgroup.Group
	)

	err := filepath.Walk(directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".csv" {
			return nil
		}
		g.Go(func() error {
			data, err := parseCSVFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			allData = append(allData, data...)
			mu.Unlock()
			return nil
		})
		return nil
	})
	if werr := g.Wait(); werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	return allData, nil
}
