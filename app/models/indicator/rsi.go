package indicator

import (
	"math"

	"github.com/moznion/go-optional"
)

// RsiAnalyzer classifies momentum with the Relative Strength Index
type RsiAnalyzer struct {
	Period     int     `json:"period"`
	BuyThread  float64 `json:"buy_thread"`
	SellThread float64 `json:"sell_thread"`
}

// NewRsiAnalyzer returns RsiAnalyzer with period 14 and thresholds 30/70
func NewRsiAnalyzer() *RsiAnalyzer {
	return &RsiAnalyzer{Period: RsiPeriod, BuyThread: RsiBuyThread, SellThread: RsiSellThread}
}

// Name is "Relative Strength Index (RSI)"
func (r *RsiAnalyzer) Name() string { return RsiName }

// Rsi returns RSI aligned to closes, using simple rolling means of up and down moves.
// Index 0 and bars before the first full window of diffs are None.
func (r *RsiAnalyzer) Rsi(closes []float64) []optional.Option[float64] {
	rsi := make([]optional.Option[float64], len(closes))
	if len(closes) == 0 {
		return rsi
	}
	rsi[0] = optional.None[float64]()

	ups := make([]float64, len(closes)-1)
	downs := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		diff := closes[i] - closes[i-1]
		if diff > 0 {
			ups[i-1] = diff
		} else if diff < 0 {
			downs[i-1] = math.Abs(diff)
		}
	}

	avgUp := RollingMean(ups, r.Period)
	avgDown := RollingMean(downs, r.Period)
	for j := range ups {
		if avgUp[j].IsNone() || avgDown[j].IsNone() {
			rsi[j+1] = optional.None[float64]()
			continue
		}
		rsi[j+1] = optional.Some(relativeStrength(avgUp[j].Unwrap(), avgDown[j].Unwrap()))
	}
	return rsi
}

func relativeStrength(up, down float64) float64 {
	if down == 0 {
		if up == 0 {
			// no movement in the window
			return 50
		}
		return 100
	}
	return 100 - 100/(1+up/down)
}

// Analyze recommends Sell above SellThread, Buy below BuyThread, otherwise Hold.
// Hold is also returned while RSI is not defined yet.
func (r *RsiAnalyzer) Analyze(series Series) (Record, error) {
	closes := series.Closes()
	if len(closes) < 2 {
		return Record{}, NewInsufficientDataError(r.Name(), 2, len(closes))
	}

	last, _ := Last(r.Rsi(closes))

	recommendation := Hold
	if last.IsSome() {
		switch value := last.Unwrap(); {
		case value > r.SellThread:
			recommendation = Sell
		case value < r.BuyThread:
			recommendation = Buy
		}
	}

	return Record{
		Analysis:       r.Name(),
		Description:    rsiDescription,
		Recommendation: recommendation,
	}, nil
}
