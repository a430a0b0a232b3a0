package utils

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func SetVerbose() {
	Logger.SetLevel(logrus.DebugLevel)
}

// SetFormat switches the shared logger between "text" and "json" output.
func SetFormat(format string) error {
	switch format {
	case "", "text":
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format: %s", format)
	}
	return nil
}
