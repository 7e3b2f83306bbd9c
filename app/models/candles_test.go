package models_test

import (
	"time"

	"github.com/jumpei00/gostocksignal/app/models"
	"github.com/markcheno/go-quote"
)

func (suite *ModelsTestSuite) TestNewCandlesFromQuote() {
	q := quote.NewQuote("VOO", 4)
	// out of order, a duplicated day and a holiday without prices
	q.Date[0] = time.Date(2024, 1, 3, 21, 0, 0, 0, time.UTC)
	q.Date[1] = time.Date(2024, 1, 2, 21, 0, 0, 0, time.UTC)
	q.Date[2] = time.Date(2024, 1, 3, 22, 0, 0, 0, time.UTC)
	q.Date[3] = time.Date(2024, 1, 4, 21, 0, 0, 0, time.UTC)
	for i, c := range []float64{11, 10, 12, 0} {
		q.Open[i], q.High[i], q.Low[i], q.Close[i], q.Volume[i] = c, c, c, c, 100
	}

	candles := models.NewCandlesFromQuote("VOO", &q)

	suite.Len(candles, 2)
	suite.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).UnixMilli(), candles[0].Time)
	suite.Equal(10.0, candles[0].Close)
	suite.Equal(12.0, candles[1].Close)
	suite.Equal(int64(100), *candles[1].Volume)
	suite.Equal("VOO", candles[1].Symbol)

	cframe, err := models.NewCandleFrame("VOO", candles)
	suite.Nil(err)
	suite.Len(cframe.Closes(), 2)
}

func (suite *ModelsTestSuite) TestGetCandleFrame() {
	cframe, err := models.GetCandleFrame("VOO", 30)
	suite.Nil(err)

	times := []int64{}
	for _, c := range cframe.Candles {
		times = append(times, c.Time)
	}

	suite.Equal("VOO", cframe.Symbol)
	suite.Len(cframe.Candles, 30)
	suite.IsIncreasing(times)
	// latest candles are kept
	suite.Equal(159.0, cframe.Candles[29].Close)

	cframe, err = models.GetCandleFrame("GOOGL", 30)
	suite.Nil(err)
	suite.Empty(cframe.Candles)
}

func (suite *ModelsTestSuite) TestLastCandleTime() {
	lastCandleTime, err := models.LastCandleTime("VOO")
	suite.Nil(err)
	suite.Equal(suite.Candles[len(suite.Candles)-1].Time, lastCandleTime)

	_, err = models.LastCandleTime("GOOGL")
	suite.NotNil(err)
}

func (suite *ModelsTestSuite) TestReplaceCandles() {
	suite.Nil(models.ReplaceCandles("VOO", makeCandles("VOO", 1, 2, 3)))

	cframe, err := models.GetCandleFrame("VOO", 100)
	suite.Nil(err)
	suite.Equal([]float64{1, 2, 3}, cframe.Closes())
}

func (suite *ModelsTestSuite) TestDeleteCandles() {
	suite.Nil(makeCandles("GOOGL", 1, 2).CreateCandles())
	suite.Nil(models.DeleteCandles("VOO"))

	cframe, _ := models.GetCandleFrame("VOO", 10)
	suite.Empty(cframe.Candles)

	cframe, _ = models.GetCandleFrame("GOOGL", 10)
	suite.Len(cframe.Candles, 2)
}
