package indicator

// Recommendation is the categorical trade signal of an analysis
type Recommendation string

const (
	// Buy represents "Buy" signal
	Buy Recommendation = "Buy"
	// Sell represents "Sell" signal
	Sell Recommendation = "Sell"
	// Hold represents that today does not trade
	Hold Recommendation = "Hold"
)

// Color is the display color used by the dashboard and the terminal table
func (r Recommendation) Color() string {
	switch r {
	case Sell:
		return "tomato"
	case Buy:
		return "green"
	default:
		return "yellow"
	}
}

// analysis names, shown verbatim to users
const (
	MacdName = "MACD"
	BBName   = "Bollinger Bands"
	RsiName  = "Relative Strength Index (RSI)"
)

const (
	macdDescription = "The MACD is a trend-following momentum indicator that shows the relationship between two moving averages of a stock's price. A bullish MACD indicates that the stock is likely to continue rising, while a bearish MACD indicates that the stock is likely to continue falling."
	bbDescription   = "Bollinger Bands are a technical analysis tool that uses moving averages and standard deviations to indicate overbought or oversold conditions in a stock. When the stock price is above the upper band, it is considered overbought, and when the stock price is below the lower band, it is considered oversold."
	rsiDescription  = "The Relative Strength Index (RSI) is a momentum indicator that measures the strength of a stock's price movement. A reading above 70 indicates that the stock is overbought and may be due for a correction, while a reading below 30 indicates that the stock is oversold and may be a good buying opportunity."
)

// default parameters
const (
	MacdFast   = 12
	MacdSlow   = 26
	MacdSignal = 9

	BBn = 20
	BBk = 2.0

	RsiPeriod     = 14
	RsiBuyThread  = 30.0
	RsiSellThread = 70.0
)
