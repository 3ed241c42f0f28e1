package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/utils"
)

type Component string

const (
	MainComponent             Component = "MAIN"
	ApiComponent              Component = "API"
	RecognizerComponent       Component = "RECOGNIZER"
	RecognizerClientComponent Component = "RECOGNIZER_CLIENT"
	StatsComponent            Component = "STATS"
	CLIComponent              Component = "CLI"
)

const timestampFormat = "2006-01-02 15:04:05"

type Logger struct {
	*logrus.Entry
}

func NewLogger(cfg config.Config) (*Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	}

	log.SetOutput(os.Stdout)
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(io.MultiWriter(os.Stdout, file))
	}

	return &Logger{
		Entry: logrus.NewEntry(log).WithField("component", MainComponent),
	}, nil
}

// NewNop returns a logger that discards everything. Used by tests and the CLI
// commands that do not need output.
func NewNop() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{Entry: logrus.NewEntry(log)}
}

func (l *Logger) WithComponent(component Component) *Logger {
	return &Logger{
		Entry: l.Entry.WithField("component", component),
	}
}

func (l *Logger) WithApiTag() *Logger {
	return l.WithComponent(ApiComponent)
}

func (l *Logger) WithRecognizerTag() *Logger {
	return l.WithComponent(RecognizerComponent)
}

func (l *Logger) WithRecognizerClientTag() *Logger {
	return l.WithComponent(RecognizerClientComponent)
}

func (l *Logger) WithStatsTag() *Logger {
	return l.WithComponent(StatsComponent)
}

func (l *Logger) WithCLITag() *Logger {
	return l.WithComponent(CLIComponent)
}

func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

func (l *Logger) WithContext(ctx context.Context) *Logger {
	fields := logrus.Fields{}

	for key := range utils.ContextKeys {
		val, ok := utils.GetContextValue(ctx, key)
		if !ok {
			continue
		}
		switch key {
		case utils.UserCtxKey:
			if id, ok := val.(uuid.UUID); ok {
				fields["user_id"] = id.String()
			}
		case utils.RequestIDKey:
			if reqID, ok := val.(string); ok && reqID != "" {
				fields["request_id"] = reqID
			}
		case utils.PathKey:
			if path, ok := val.(string); ok && path != "" {
				fields["path"] = path
			}
		case utils.MethodKey:
			if method, ok := val.(string); ok && method != "" {
				fields["method"] = method
			}
		}
	}

	if len(fields) > 0 {
		return &Logger{
			Entry: l.WithFields(fields),
		}
	}

	return l
}
