package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalLogger *AppLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(l *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the global logger, falling back to a plain logrus
// logger when none has been set.
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		return &AppLogger{Logger: logrus.StandardLogger()}
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Warn(msg)
}

// Error logs an error message using the global logger
func Error(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Error(msg)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Debug(msg)
}
