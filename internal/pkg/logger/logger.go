package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/models"
)

// AppLogger wraps logrus with the service-wide field conventions
type AppLogger struct {
	*logrus.Logger
	serviceName string
	file        *os.File
}

// NewAppLogger creates a structured JSON logger. When cfg.FilePath is set the
// logger writes to both stdout and the file.
func NewAppLogger(serviceName string, cfg models.LoggerConfig) (*AppLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	al := &AppLogger{Logger: l, serviceName: serviceName}

	if cfg.FilePath != "" {
		if err := al.setupFileOutput(cfg.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return al, nil
}

func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.file = file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))
	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// WithFields adds custom fields to a log entry, always tagging the service name
func (al *AppLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["service"] = al.serviceName
	return al.Logger.WithFields(fields)
}

// WithError adds an error field to a log entry
func (al *AppLogger) WithError(err error) *logrus.Entry {
	return al.WithFields(logrus.Fields{}).WithError(err)
}
