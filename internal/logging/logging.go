package logging

import (
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
)

var (
	globalLogger arbor.ILogger
	loggerMutex  sync.RWMutex
)

func consoleWriter() models.WriterConfiguration {
	return models.WriterConfiguration{
		Type:             models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		TextOutput:       true,
		DisableTimestamp: false,
	}
}

// Get returns the global logger, initialising a console logger on first use.
func Get() arbor.ILogger {
	loggerMutex.RLock()
	if globalLogger != nil {
		loggerMutex.RUnlock()
		return globalLogger
	}
	loggerMutex.RUnlock()

	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if globalLogger == nil {
		globalLogger = arbor.NewLogger().WithConsoleWriter(consoleWriter())
	}
	return globalLogger
}

// Init configures the global logger: console output at the given level,
// plus a file writer when logFile is non-empty.
func Init(level, logFile string) arbor.ILogger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	logger := arbor.NewLogger().WithConsoleWriter(consoleWriter())
	if logFile != "" {
		logger = logger.WithFileWriter(models.WriterConfiguration{
			Type:             models.LogWriterTypeFile,
			FileName:         logFile,
			TimeFormat:       "15:04:05",
			MaxSize:          10 * 1024 * 1024,
			MaxBackups:       3,
			TextOutput:       true,
			DisableTimestamp: false,
		})
	}
	logger = logger.WithLevelFromString(level)

	globalLogger = logger
	return logger
}

// Start writes the run-start marker and returns a function that writes the
// matching run-finished marker. Callers defer the returned function so
// every invocation is bracketed in the log.
func Start(log arbor.ILogger, version string) func() {
	log.Info().Str("version", version).Msg("cabertoss starting")
	return func() {
		log.Info().Msg("cabertoss finished")
	}
}
