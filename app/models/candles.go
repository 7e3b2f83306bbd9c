package models

import (
	"math"
	"sort"
	"time"

	"github.com/markcheno/go-quote"
)

// Candles is slice of Candle
// Using this, create candle data in database
type Candles []Candle

// Candle is daily stock candledata, also used as json.
// Time is unix milliseconds of the trading day at UTC midnight.
type Candle struct {
	ID     int     `json:"-"`
	Symbol string  `gorm:"index:idx_symbol_time" json:"-"`
	Time   int64   `gorm:"index:idx_symbol_time" json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume *int64  `json:"volume,omitempty"`
}

// Date returns the trading day of the candle
func (c *Candle) Date() time.Time {
	return tradingDay(time.UnixMilli(c.Time))
}

func tradingDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewCandlesFromQuote converts Quote to Candles,
// ex) [Date[1, 2, 3...], Open[1, 2, 3...]...] → [[Date[1], Open[1]...], [Date[2], Open[2]...]...]
// Bars are sorted ascending and de-duplicated by trading day, the later bar wins.
// Bars without any price (holidays reported as null) are skipped.
func NewCandlesFromQuote(symbol string, q *quote.Quote) Candles {
	byDay := make(map[int64]Candle, len(q.Date))
	for i := 0; i < len(q.Date); i++ {
		if q.Open[i] == 0 && q.High[i] == 0 && q.Low[i] == 0 && q.Close[i] == 0 {
			continue
		}
		day := tradingDay(q.Date[i]).UnixMilli()
		volume := int64(math.Round(q.Volume[i]))
		byDay[day] = Candle{
			Symbol: symbol,
			Time:   day,
			Open:   q.Open[i],
			High:   q.High[i],
			Low:    q.Low[i],
			Close:  q.Close[i],
			Volume: &volume,
		}
	}

	candles := make(Candles, 0, len(byDay))
	for _, c := range byDay {
		candles = append(candles, c)
	}
	sort.Slice(candles, func(i, j int) bool { return candles[i].Time < candles[j].Time })
	return candles
}

// CreateCandles creates candle data
func (cs Candles) CreateCandles() error {
	if len(cs) == 0 {
		return nil
	}
	rows := append(Candles(nil), cs...)
	return DB.Create(&rows).Error
}

// ReplaceCandles deletes the stored candles of symbol and stores cs instead
func ReplaceCandles(symbol string, cs Candles) error {
	if err := DeleteCandles(symbol); err != nil {
		return err
	}
	return cs.CreateCandles()
}

// DeleteCandles deletes all candles of symbol
func DeleteCandles(symbol string) error {
	return DB.Where("symbol = ?", symbol).Delete(&Candle{}).Error
}

// GetCandleFrame gets the latest limit candles of symbol by descending,
// and returns them ascending in CandleFrame
func GetCandleFrame(symbol string, limit int) (*CandleFrame, error) {
	var candles Candles
	if err := DB.Where("symbol = ?", symbol).Order("time desc").Limit(limit).Find(&candles).Error; err != nil {
		return nil, err
	}
	sort.Slice(candles, func(i, j int) bool { return candles[i].Time < candles[j].Time })

	return &CandleFrame{Symbol: symbol, Candles: candles}, nil
}

// LastCandleTime returns a time of last candle of symbol
func LastCandleTime(symbol string) (int64, error) {
	var candle Candle
	if err := DB.Where("symbol = ?", symbol).Order("time desc").First(&candle).Error; err != nil {
		return 0, err
	}
	return candle.Time, nil
}
