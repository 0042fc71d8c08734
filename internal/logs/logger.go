package logs

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the application-wide logger, initialized via Init.
var Logger = logrus.New()

// Options configure the logger.
type Options struct {
	Level  string // trace|debug|info|warn|error|fatal
	Format string // text|json
}

// Init configures the global logger from the given options.
func Init(opts Options) {
	switch opts.Level {
	case "trace":
		Logger.SetLevel(logrus.TraceLevel)
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Logger.SetLevel(logrus.FatalLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}

	if opts.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Logger.SetOutput(os.Stdout)
}
