package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"guessr/config"
	deliverycontext "guessr/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through slog, preferring the
// request-scoped logger stored in the statement context.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		base:          base,
		level:         logger.Warn,
		slowThreshold: defaultGormSlowThreshold,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Storage != nil && cfg.Storage.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Storage.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) emit(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < min {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements, and in debug mode every statement.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn

	var (
		level slog.Level
		msg   string
	)
	switch {
	case failed:
		level, msg = slog.LevelError, "gorm query failed"
	case slow:
		level, msg = slog.LevelWarn, "gorm slow query"
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "gorm query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if failed {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	if slow {
		attrs = append(attrs, slog.Duration("slow_threshold", l.slowThreshold))
	}

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
