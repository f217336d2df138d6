package matcher

import "github.com/rs/zerolog"

// logger is the package-level logger, silent until SetLogger is called —
// the same pattern the source library's common.SetLogger/GetLogger pair
// uses so a host application can redirect matcher logs into its own
// zerolog pipeline.
var logger = zerolog.Nop()

// SetLogger installs l as the package-level logger for all Matcher
// instances created afterward... and any already created, since Matcher
// reads the package logger lazily rather than copying it at New time.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// GetLogger returns the current package-level logger.
func GetLogger() zerolog.Logger {
	return logger
}
