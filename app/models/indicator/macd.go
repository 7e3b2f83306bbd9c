package indicator

// MacdAnalyzer classifies the trend from the MACD histogram
type MacdAnalyzer struct {
	Fast   int `json:"fast"`
	Slow   int `json:"slow"`
	Signal int `json:"signal"`
}

// NewMacdAnalyzer returns MacdAnalyzer with 12, 26, 9
func NewMacdAnalyzer() *MacdAnalyzer {
	return &MacdAnalyzer{Fast: MacdFast, Slow: MacdSlow, Signal: MacdSignal}
}

// Name is "MACD"
func (m *MacdAnalyzer) Name() string { return MacdName }

// Macd returns the MACD line, the signal line and the histogram, all aligned to closes
func (m *MacdAnalyzer) Macd(closes []float64) (line, signal, hist []float64) {
	fast := Ema(closes, m.Fast)
	slow := Ema(closes, m.Slow)

	line = make([]float64, len(closes))
	for i := range closes {
		line[i] = fast[i] - slow[i]
	}
	signal = Ema(line, m.Signal)

	hist = make([]float64, len(closes))
	for i := range closes {
		hist[i] = line[i] - signal[i]
	}
	return line, signal, hist
}

// Analyze recommends Buy when the last histogram value is positive, otherwise Sell.
// Series shorter than the slow span are still classified.
func (m *MacdAnalyzer) Analyze(series Series) (Record, error) {
	closes := series.Closes()
	if len(closes) == 0 {
		return Record{}, NewInsufficientDataError(m.Name(), 1, 0)
	}

	_, _, hist := m.Macd(closes)
	last, _ := Last(hist)

	recommendation := Sell
	if last > 0 {
		recommendation = Buy
	}

	return Record{
		Analysis:       m.Name(),
		Description:    macdDescription,
		Recommendation: recommendation,
	}, nil
}
