package models

import (
	"math"
	"time"

	"github.com/jumpei00/gostocksignal/app/models/indicator"
	"github.com/markcheno/go-talib"
	"github.com/moznion/go-optional"
)

// DataFrame is data frame including candles, their summary and recommendations
type DataFrame struct {
	*CandleFrame
	*SummaryFrame
	*RecommendFrame
}

// NewDataFrame is constructor of DataFrame
func NewDataFrame() *DataFrame {
	return &DataFrame{}
}

// AddCandleFrame adds CandleFrame in DataFrame
func (dframe *DataFrame) AddCandleFrame(cframe *CandleFrame) {
	dframe.CandleFrame = cframe
}

// AddSummaryFrame adds the trend and close extremes of cframe in DataFrame
func (dframe *DataFrame) AddSummaryFrame(cframe *CandleFrame) {
	dframe.SummaryFrame = &SummaryFrame{Summary: cframe.Summarize()}
}

// AddRecommendFrame adds the recommendation table of cframe in DataFrame
func (dframe *DataFrame) AddRecommendFrame(symbol string, table indicator.Table) {
	dframe.RecommendFrame = NewRecommendFrame(symbol, table)
}

// SummaryFrame is summary data frame
type SummaryFrame struct {
	Summary *Summary `json:"summary,omitempty"`
}

// Summary describes the price action of a candle frame for charts
type Summary struct {
	Trend    string  `json:"trend"`
	Color    string  `json:"color"`
	MinClose float64 `json:"min_close"`
	MinTime  int64   `json:"min_time"`
	MaxClose float64 `json:"max_close"`
	MaxTime  int64   `json:"max_time"`
}

// trend of a frame
const (
	TrendUp   = "up"
	TrendDown = "down"
)

// CandleFrame is candle data frame, the price series every analysis reads
type CandleFrame struct {
	Symbol  string   `json:"symbol,omitempty"`
	Candles []Candle `json:"candles,omitempty"`
}

// NewCandleFrame validates candles and returns CandleFrame
func NewCandleFrame(symbol string, candles []Candle) (*CandleFrame, error) {
	cframe := &CandleFrame{Symbol: symbol, Candles: candles}
	if err := cframe.Validate(); err != nil {
		return nil, err
	}
	return cframe, nil
}

// Validate checks that the frame is not empty, trading days strictly increase,
// prices are finite and non-negative, and volumes are non-negative
func (cframe *CandleFrame) Validate() error {
	if len(cframe.Candles) == 0 {
		return indicator.NewInsufficientDataError("", 1, 0)
	}

	var prev time.Time
	for i, c := range cframe.Candles {
		day := c.Date()
		if i > 0 && !day.After(prev) {
			return indicator.NewMalformedSeriesError(i, "date %s does not follow %s",
				day.Format("2006-01-02"), prev.Format("2006-01-02"))
		}
		prev = day

		for _, p := range []struct {
			name  string
			value float64
		}{{"open", c.Open}, {"high", c.High}, {"low", c.Low}, {"close", c.Close}} {
			if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
				return indicator.NewMalformedSeriesError(i, "%s price is not finite", p.name)
			}
			if p.value < 0 {
				return indicator.NewMalformedSeriesError(i, "%s price %v is negative", p.name, p.value)
			}
		}

		if c.Volume != nil && *c.Volume < 0 {
			return indicator.NewMalformedSeriesError(i, "volume %d is negative", *c.Volume)
		}
	}
	return nil
}

// Opens is open prices of candles
func (cframe *CandleFrame) Opens() []float64 {
	open := make([]float64, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		open[i] = candle.Open
	}
	return open
}

// Highs is high prices of candles
func (cframe *CandleFrame) Highs() []float64 {
	high := make([]float64, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		high[i] = candle.High
	}
	return high
}

// Lows is low prices of candles
func (cframe *CandleFrame) Lows() []float64 {
	low := make([]float64, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		low[i] = candle.Low
	}
	return low
}

// Closes is close prices of candles
func (cframe *CandleFrame) Closes() []float64 {
	close := make([]float64, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		close[i] = candle.Close
	}
	return close
}

// Volumes is volumes of candles, None where the provider reported none
func (cframe *CandleFrame) Volumes() []optional.Option[int64] {
	volume := make([]optional.Option[int64], len(cframe.Candles))
	for i, candle := range cframe.Candles {
		if candle.Volume == nil {
			volume[i] = optional.None[int64]()
			continue
		}
		volume[i] = optional.Some(*candle.Volume)
	}
	return volume
}

// Between returns the candles whose trading day lies within [start, end].
// A None bound is open.
func (cframe *CandleFrame) Between(start, end optional.Option[time.Time]) *CandleFrame {
	filtered := &CandleFrame{Symbol: cframe.Symbol, Candles: []Candle{}}
	for _, c := range cframe.Candles {
		day := c.Date()
		if start.IsSome() && day.Before(tradingDay(start.Unwrap())) {
			continue
		}
		if end.IsSome() && day.After(tradingDay(end.Unwrap())) {
			continue
		}
		filtered.Candles = append(filtered.Candles, c)
	}
	return filtered
}

// Summarize returns the trend, from the first open to the last close,
// and the lowest and highest close with their time. Nil when empty.
func (cframe *CandleFrame) Summarize() *Summary {
	n := len(cframe.Candles)
	if n == 0 {
		return nil
	}

	first, last := cframe.Candles[0], cframe.Candles[n-1]
	summary := &Summary{Trend: TrendDown, Color: "red"}
	if first.Open < last.Close {
		summary.Trend, summary.Color = TrendUp, "green"
	}

	closes := cframe.Closes()
	minClose, maxClose := closes[0], closes[0]
	if n > 1 {
		minClose = talib.Min(closes, n)[n-1]
		maxClose = talib.Max(closes, n)[n-1]
	}
	minFound, maxFound := false, false
	for i, c := range closes {
		if c == minClose && !minFound {
			summary.MinClose, summary.MinTime, minFound = c, cframe.Candles[i].Time, true
		}
		if c == maxClose && !maxFound {
			summary.MaxClose, summary.MaxTime, maxFound = c, cframe.Candles[i].Time, true
		}
	}
	return summary
}
