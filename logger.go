package px

import "github.com/rs/zerolog"

// Decoding can emit per-command trace output, useful when dissecting broken
// containers. Logging is off (zerolog.Nop) unless a caller installs a logger.
var log = zerolog.Nop()

// SetLogger installs l as the package logger. Decode emits Debug per
// container and Trace per command byte and back-reference.
func SetLogger(l zerolog.Logger) {
	log = l
}

// DisableLogger restores the default no-op logger.
func DisableLogger() {
	log = zerolog.Nop()
}
