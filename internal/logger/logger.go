package logger

import (
	"context"
	"log/slog"
	"os"
	"time"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID returns a new context carrying the given request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func getRequestID(ctx context.Context) string {
	if v := ctx.Value(requestIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Init sets up the global slog JSON logger.
func Init(logLevel string) {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}

func CtxInfo(ctx context.Context, msg string, args ...slog.Attr) {
	if reqID := getRequestID(ctx); reqID != "" {
		args = append(args, slog.String("request_id", reqID))
	}
	slog.LogAttrs(ctx, slog.LevelInfo, msg, args...)
}

func CtxWarn(ctx context.Context, msg string, args ...slog.Attr) {
	if reqID := getRequestID(ctx); reqID != "" {
		args = append(args, slog.String("request_id", reqID))
	}
	slog.LogAttrs(ctx, slog.LevelWarn, msg, args...)
}

func CtxError(ctx context.Context, msg string, err error, args ...slog.Attr) {
	if reqID := getRequestID(ctx); reqID != "" {
		args = append(args, slog.String("request_id", reqID))
	}
	args = append(args, slog.Any("error", err))
	slog.LogAttrs(ctx, slog.LevelError, msg, args...)
}

func Info(msg string, args ...slog.Attr) {
	slog.LogAttrs(context.Background(), slog.LevelInfo, msg, args...)
}

func Error(msg string, err error, args ...slog.Attr) {
	args = append(args, slog.Any("error", err))
	slog.LogAttrs(context.Background(), slog.LevelError, msg, args...)
}
