// Package debug provides optional file-based debug logging.
//
// When the DESKY_DEBUG environment variable is set to a file path, debug
// records are appended to that file as zerolog JSON lines. Otherwise the
// returned logger is disabled.
package debug
