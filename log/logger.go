package log

// Logger is the logging surface used by the renderer and the CLI.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(key string, value interface{}) Logger

	// Close releases the log file, if any. Loggers derived with WithField
	// share it.
	Close() error
}
