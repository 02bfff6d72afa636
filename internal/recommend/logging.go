package recommend

import (
	"context"
	"log/slog"
	"time"
)

// LoggingService is a decorator that logs every service call.
type LoggingService struct {
	inner  Service
	logger *slog.Logger
}

// WithLogging wraps a Service with structured call logging.
func WithLogging(s Service, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingService{inner: s, logger: logger}
}

func (l *LoggingService) Recommend(ctx context.Context, concerns []string) (*Recommendation, error) {
	ctx, id := ensureRequestID(ctx)
	start := time.Now()

	rec, err := l.inner.Recommend(ctx, concerns)

	attrs := []slog.Attr{
		slog.String("request_id", id),
		slog.Int("concerns", len(concerns)),
		slog.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.logger.LogAttrs(ctx, slog.LevelWarn, "recommend failed", append(attrs, slog.String("error", err.Error()))...)
		return nil, err
	}
	l.logger.LogAttrs(ctx, slog.LevelInfo, "recommend",
		append(attrs,
			slog.Int("ingredients", rec.Len()),
			slog.Int("recommended", len(rec.RecommendedNames())),
		)...)
	return rec, nil
}

func (l *LoggingService) Products(ctx context.Context, ingredients []string) (*ProductList, error) {
	ctx, id := ensureRequestID(ctx)
	start := time.Now()

	list, err := l.inner.Products(ctx, ingredients)

	attrs := []slog.Attr{
		slog.String("request_id", id),
		slog.Int("ingredients", len(ingredients)),
		slog.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.logger.LogAttrs(ctx, slog.LevelWarn, "filter products failed", append(attrs, slog.String("error", err.Error()))...)
		return nil, err
	}
	l.logger.LogAttrs(ctx, slog.LevelInfo, "filter products", append(attrs, slog.Int("products", len(list.Products)))...)
	return list, nil
}
