package models

import (
	"context"
	"fmt"

	"github.com/jumpei00/gostocksignal/app/models/indicator"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Recommend validates cframe, runs MACD, Bollinger Bands and RSI concurrently
// and returns their records in table order. Any failure fails the whole table.
func Recommend(ctx context.Context, cframe *CandleFrame) (indicator.Table, error) {
	if err := cframe.Validate(); err != nil {
		return nil, err
	}

	macd, bb, rsi := indicator.DefaultAnalyzers()
	analyzers := []indicator.Analyzer{macd, bb, rsi}
	records := make([]indicator.Record, len(analyzers))

	g, ctx := errgroup.WithContext(ctx)
	for i, analyzer := range analyzers {
		i, analyzer := i, analyzer
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, err := analyzer.Analyze(cframe)
			if err != nil {
				return fmt.Errorf("%s: %w", analyzer.Name(), err)
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logrus.Warnf("recommend error, symbol: %v, error: %v", cframe.Symbol, err)
		return nil, err
	}

	return indicator.Aggregate(records[0], records[1], records[2]), nil
}

// RecommendFrame is recommendation data frame
type RecommendFrame struct {
	Recommendations *Recommendations `json:"recommendations,omitempty"`
}

// Recommendations is the recommendation table of a symbol with display colors
type Recommendations struct {
	Symbol string              `json:"symbol"`
	Header string              `json:"header"`
	Table  []RecommendationRow `json:"table"`
}

// RecommendationRow is Record with its display color
type RecommendationRow struct {
	indicator.Record
	Color string `json:"Color"`
}

// NewRecommendFrame builds RecommendFrame from table
func NewRecommendFrame(symbol string, table indicator.Table) *RecommendFrame {
	rows := make([]RecommendationRow, len(table))
	for i, record := range table {
		rows[i] = RecommendationRow{Record: record, Color: record.Recommendation.Color()}
	}
	return &RecommendFrame{Recommendations: &Recommendations{
		Symbol: symbol,
		Header: fmt.Sprintf("Trade Recommendations for %s", symbol),
		Table:  rows,
	}}
}
