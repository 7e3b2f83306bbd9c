package indicator

import "github.com/moznion/go-optional"

// BBAnalyzer classifies the last close against Bollinger Bands
type BBAnalyzer struct {
	N int     `json:"n"`
	K float64 `json:"k"`
}

// NewBBAnalyzer returns BBAnalyzer with n=20, k=2
func NewBBAnalyzer() *BBAnalyzer {
	return &BBAnalyzer{N: BBn, K: BBk}
}

// Name is "Bollinger Bands"
func (bb *BBAnalyzer) Name() string { return BBName }

// BBands returns upper, middle and lower bands.
// Bars before the first full window are None.
func (bb *BBAnalyzer) BBands(closes []float64) (upper, middle, lower []optional.Option[float64]) {
	middle = RollingMean(closes, bb.N)
	std := RollingStd(closes, bb.N)

	upper = make([]optional.Option[float64], len(closes))
	lower = make([]optional.Option[float64], len(closes))
	for i := range closes {
		if middle[i].IsNone() || std[i].IsNone() {
			upper[i] = optional.None[float64]()
			lower[i] = optional.None[float64]()
			continue
		}
		m, s := middle[i].Unwrap(), std[i].Unwrap()
		upper[i] = optional.Some(m + bb.K*s)
		lower[i] = optional.Some(m - bb.K*s)
	}
	return upper, middle, lower
}

// Analyze recommends Sell above the upper band, Buy below the lower band, otherwise Hold.
// Hold is also returned while the band is not defined yet.
func (bb *BBAnalyzer) Analyze(series Series) (Record, error) {
	closes := series.Closes()
	if len(closes) == 0 {
		return Record{}, NewInsufficientDataError(bb.Name(), 1, 0)
	}

	upper, _, lower := bb.BBands(closes)
	price, _ := Last(closes)
	up, _ := Last(upper)
	low, _ := Last(lower)

	recommendation := Hold
	switch {
	case up.IsNone() || low.IsNone():
	case price > up.Unwrap():
		recommendation = Sell
	case price < low.Unwrap():
		recommendation = Buy
	}

	return Record{
		Analysis:       bb.Name(),
		Description:    bbDescription,
		Recommendation: recommendation,
	}, nil
}
