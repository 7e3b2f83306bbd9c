package config

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Config represents config info
var Config ConfList

// ConfList has contents of config.ini
type ConfList struct {
	DBdriver string
	DBname   string
	Port     int
	IP       string

	// Provider is "yahoo" or "archive"
	Provider string
	// Archive is the directory of daily csv files used by the archive provider
	Archive string
	// Period is the default history length in days
	Period         int
	Adjust         bool
	RequestsPerSec int
	MaxRetrySec    int

	LogLevel string
}

// InitConfig initializes config settings from path,
// keys missing from the file keep their defaults
func InitConfig(path string) error {
	conf, err := ini.LooseLoad(path)
	if err != nil {
		logrus.Warnf("init file open error: %v", err)
		return err
	}

	Config = ConfList{
		DBdriver: conf.Section("db").Key("driver").MustString("sqlite3"),
		DBname:   conf.Section("db").Key("name").MustString("stocksignal.sql"),
		Port:     conf.Section("web").Key("port").MustInt(8080),
		IP:       conf.Section("web").Key("ip").String(),

		Provider:       conf.Section("stock").Key("provider").MustString("yahoo"),
		Archive:        conf.Section("stock").Key("archive").MustString("./data/date"),
		Period:         conf.Section("stock").Key("period").MustInt(365),
		Adjust:         conf.Section("stock").Key("adjust").MustBool(true),
		RequestsPerSec: conf.Section("stock").Key("rate").MustInt(2),
		MaxRetrySec:    conf.Section("stock").Key("retry").MustInt(30),

		LogLevel: conf.Section("log").Key("level").MustString("info"),
	}
	return nil
}
