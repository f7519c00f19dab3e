package logging

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the id of the current request.
const RequestIDKey = "request_id"

type Logger struct {
	*slog.Logger
}

func BuildLogger() *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	attrs := []any{"path", ctx.Request.URL.Path}
	if requestID := ctx.GetString(RequestIDKey); requestID != "" {
		attrs = append(attrs, RequestIDKey, requestID)
	}
	return logger.With(attrs...)
}

func (l *Logger) WithError(err error) *Logger {
	return l.With("error", err.Error())
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}
