package indicator

// Series is the close price column analyzers read from
type Series interface {
	Closes() []float64
}

// Analyzer turns a price series into a single recommendation record
type Analyzer interface {
	Name() string
	Analyze(series Series) (Record, error)
}

// Record is one row of the recommendation table.
// json keys are consumed verbatim by the dashboard
type Record struct {
	Analysis       string         `json:"Analysis"`
	Description    string         `json:"Description"`
	Recommendation Recommendation `json:"Recommendation"`
}

// Table holds exactly three records ordered MACD, Bollinger Bands, RSI
type Table []Record

// Aggregate concatenates analyzer outputs in the fixed table order
func Aggregate(macd, bb, rsi Record) Table {
	return Table{macd, bb, rsi}
}

// DefaultAnalyzers returns the analyzers with their default parameters, in table order
func DefaultAnalyzers() (*MacdAnalyzer, *BBAnalyzer, *RsiAnalyzer) {
	return NewMacdAnalyzer(), NewBBAnalyzer(), NewRsiAnalyzer()
}
