package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger shared by the service and the CLI.
var Log *logrus.Logger

func init() {
	Log = logrus.New()
}

// InitLogger configures Log. level is any logrus level name ("debug",
// "info", ...); format is "json" or "text".
func InitLogger(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	var formatter logrus.Formatter
	switch strings.ToLower(format) {
	case "json", "":
		formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "@timestamp",
			},
		}
	case "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	default:
		return fmt.Errorf("logger: unknown log format %q", format)
	}

	Log.SetOutput(os.Stdout)
	Log.SetLevel(lvl)
	Log.SetFormatter(formatter)

	return nil
}
