// Package logger holds the process-wide structured logger.
package logger

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Init configures the logger level and output format.
func Init(level string, jsonOutput bool) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if jsonOutput {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}
