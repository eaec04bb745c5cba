package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "DESKY_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *zerolog.Logger
)

// Init opens path for appending and routes the debug logger to it.
// If path is empty, uses "desky-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "desky-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	l := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logger = &l
	return nil
}

// Close closes the debug log file and disables the logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns the debug logger. The first call consults DESKY_DEBUG;
// a disabled logger is returned when it is unset or the file cannot be opened.
func Logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err == nil {
				return *logger
			}
		}
		return zerolog.Nop()
	}
	return *logger
}
