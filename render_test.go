package main

import (
	"strings"
	"testing"

	"github.com/jumpei00/gostocksignal/app/models"
	"github.com/jumpei00/gostocksignal/app/models/indicator"
	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	assert := assert.New(t)

	table := indicator.Table{
		{Analysis: indicator.MacdName, Description: "trend", Recommendation: indicator.Buy},
		{Analysis: indicator.BBName, Description: "band", Recommendation: indicator.Hold},
		{Analysis: indicator.RsiName, Description: "momentum", Recommendation: indicator.Sell},
	}
	out := renderTable("VOO", table, &models.Summary{Trend: models.TrendUp, MinClose: 99.5, MaxClose: 120})

	assert.Contains(out, "Trade Recommendations for VOO")
	assert.Contains(out, "Relative Strength Index (RSI)")
	assert.Contains(out, "Bollinger Bands")
	assert.Contains(out, "MACD")
	assert.Contains(out, "Hold")
	assert.Contains(out, "min close: 99.50")

	// header, then the rows in table order
	assert.Less(strings.Index(out, "MACD"), strings.Index(out, "Bollinger Bands"))
	assert.Less(strings.Index(out, "Bollinger Bands"), strings.Index(out, "Relative Strength"))
}
