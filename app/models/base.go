package models

import (
	"github.com/jumpei00/gostocksignal/config"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is DBconnection
var DB *gorm.DB

// InitDB opens the price history cache and migrates it.
// Only candles are stored, computed recommendations never are.
func InitDB() error {
	var err error

	DB, err = gorm.Open(sqlite.Open(config.Config.DBname), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logrus.Warnf("database open error: %v", err)
		return err
	}

	if err := DB.AutoMigrate(&Candle{}); err != nil {
		logrus.Warnf("database migrate error: %v", err)
		return err
	}
	return nil
}
