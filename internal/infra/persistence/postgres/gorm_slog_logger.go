package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"socialdesk/config"
	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM statements to slog, tagged with the request id of the caller.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	metrics       *metrics.Metrics
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config, m *metrics.Metrics) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
		metrics:       m,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) log(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM "+level.String(), l.withRequestID(ctx, slog.String("message", fmt.Sprintf(msg, args...)))...)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold
	if slow && l.metrics != nil {
		l.metrics.SlowQueries.Inc()
	}

	switch {
	case err != nil && l.level >= logger.Error:
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return
		}
		// Unique violations are expected (duplicate webhook deliveries) and handled by the caller.
		level := slog.LevelError
		if isUniqueConstraintViolation(err) {
			level = slog.LevelDebug
		}
		attrs := append(l.queryAttrs(ctx, sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, level, "GORM query failed", attrs...)
	case slow && l.level >= logger.Warn:
		attrs := append(l.queryAttrs(ctx, sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "GORM query", l.queryAttrs(ctx, sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) queryAttrs(ctx context.Context, sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return l.withRequestID(ctx,
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	)
}

func (l *gormSlogLogger) withRequestID(ctx context.Context, attrs ...slog.Attr) []slog.Attr {
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}

	return attrs
}
