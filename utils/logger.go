package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// ServiceName is attached to every log entry
const ServiceName = "meme-market"

var base = log.WithField("service", ServiceName)

// init initializes the global logger configuration when the package is imported.
func init() {
	//set log formatter to JSON with ISO 8601 timestamps
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})

	// Output to stdout
	log.SetOutput(os.Stdout)

	// Set default log level
	log.SetLevel(log.InfoLevel)
}

// SetLevel changes the global log level. Unknown levels keep the current one.
func SetLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		Warn("unknown log level, keeping current", map[string]any{"level": level})
		return
	}
	log.SetLevel(lvl)
}

// Debug logs a message at debug level with optional fields
func Debug(message string, fields map[string]any) {
	base.WithFields(fields).Debug(message)
}

// Info logs a message at info level with optional fields
func Info(message string, fields map[string]any) {
	base.WithFields(fields).Info(message)
}

// Warn logs a message at warning level with optional fields
func Warn(message string, fields map[string]any) {
	base.WithFields(fields).Warn(message)
}

// Error logs a message at error level with optional fields
func Error(message string, fields map[string]any) {
	base.WithFields(fields).Error(message)
}

// Fatal logs a message at fatal level and exits the application
func Fatal(message string, fields map[string]any) {
	base.WithFields(fields).Fatal(message)
}
