package models_test

import (
	"os"
	"testing"
	"time"

	"github.com/jumpei00/gostocksignal/app/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var firstDay = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

// makeCandles builds one candle per day starting at firstDay, opening at the previous close
func makeCandles(symbol string, closes ...float64) models.Candles {
	candles := make(models.Candles, len(closes))
	for i, c := range closes {
		open := c
		if i > 0 {
			open = closes[i-1]
		}
		volume := int64(1000 + i)
		candles[i] = models.Candle{
			Symbol: symbol,
			Time:   firstDay.AddDate(0, 0, i).UnixMilli(),
			Open:   open,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: &volume,
		}
	}
	return candles
}

func linear(start, step float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + step*float64(i)
	}
	return values
}

type ModelsTestSuite struct {
	suite.Suite
	Candles models.Candles
}

func (suite *ModelsTestSuite) SetupSuite() {
	logrus.SetLevel(logrus.ErrorLevel)
	models.DB, _ = gorm.Open(sqlite.Open("models_test.sqlite3"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	models.DB.AutoMigrate(&models.Candle{})

	suite.Candles = makeCandles("VOO", linear(100, 1, 60)...)
}

func (suite *ModelsTestSuite) SetupTest() {
	suite.Nil(suite.Candles.CreateCandles())
}

func (suite *ModelsTestSuite) TearDownTest() {
	models.DeleteCandles("VOO")
	models.DeleteCandles("GOOGL")
}

func (suite *ModelsTestSuite) TearDownSuite() {
	os.Remove("models_test.sqlite3")
}

func TestModels(t *testing.T) {
	suite.Run(t, new(ModelsTestSuite))
}
