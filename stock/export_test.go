package stock

import "github.com/markcheno/go-quote"

var ParseCSVFile = parseCSVFile

var LoadAllCSVFiles = loadAllCSVFiles

// WithFetch replaces the Yahoo download function
func (y *YahooProvider) WithFetch(fetch func(symbol, startDate, endDate string, period quote.Period, adjustQuote bool) (quote.Quote, error)) *YahooProvider {
	y.fetch = fetch
	return y
}
