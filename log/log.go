package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetLogging sets log using in this application,
// unknown levels fall back to info
func SetLogging(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("log level parse error: %v", err)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)
}
