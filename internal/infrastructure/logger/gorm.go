package logger

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// GormLogger routes GORM statements into zap under the "gorm" name.
// Statements are reduced to their head (up to VALUES, SET or WHERE) unless
// full SQL logging is enabled, so owner contact data and password hashes
// stay out of the logs.
type GormLogger struct {
	log     *zap.Logger
	level   gormlogger.LogLevel
	slow    time.Duration
	fullSQL bool
}

// GormLoggerOption configures a GormLogger
type GormLoggerOption func(*GormLogger)

// WithSlowThreshold sets the duration above which a statement is logged as slow.
// Zero disables slow query warnings.
func WithSlowThreshold(threshold time.Duration) GormLoggerOption {
	return func(l *GormLogger) {
		l.slow = threshold
	}
}

// WithFullSQL logs statements with their bound values
func WithFullSQL(enabled bool) GormLoggerOption {
	return func(l *GormLogger) {
		l.fullSQL = enabled
	}
}

// NewGormLogger creates a GORM logger backed by zap
func NewGormLogger(zapLogger *zap.Logger, level gormlogger.LogLevel, opts ...GormLoggerOption) *GormLogger {
	gl := &GormLogger{
		log:   zapLogger.Named("gorm"),
		level: level,
		slow:  defaultSlowQuery,
	}
	for _, opt := range opts {
		opt(gl)
	}
	return gl
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		Enrich(ctx, l.log).Sugar().Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		Enrich(ctx, l.log).Sugar().Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		Enrich(ctx, l.log).Sugar().Errorf(msg, data...)
	}
}

// Trace implements gormlogger.Interface.
// ErrRecordNotFound is never logged: repositories turn it into NOT_FOUND.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	isSlow := l.slow > 0 && elapsed > l.slow

	var (
		lvl gormlogger.LogLevel
		msg string
	)
	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound):
		lvl, msg = gormlogger.Error, "SQL error"
	case isSlow:
		lvl, msg = gormlogger.Warn, "Slow SQL"
	default:
		lvl, msg = gormlogger.Info, "SQL query"
	}
	if l.level < lvl || (err != nil && lvl == gormlogger.Info) {
		return
	}

	sql, rows := fc()
	if !l.fullSQL {
		sql = StatementHead(sql)
	}
	fields := []zap.Field{
		zap.String("operation", statementVerb(sql)),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}

	log := Enrich(ctx, l.log)
	switch lvl {
	case gormlogger.Error:
		log.Error(msg, append(fields, zap.Error(err))...)
	case gormlogger.Warn:
		log.Warn(msg, append(fields, zap.Duration("threshold", l.slow))...)
	default:
		log.Debug(msg, fields...)
	}
}

// StatementHead cuts a statement before its first VALUES, SET or WHERE clause
func StatementHead(sql string) string {
	upper := strings.ToUpper(sql)
	cut := len(sql)
	for _, kw := range []string{" VALUES", " SET ", " WHERE "} {
		if i := strings.Index(upper, kw); i >= 0 && i < cut {
			cut = i
		}
	}
	if cut == len(sql) {
		return sql
	}
	return strings.TrimSpace(sql[:cut]) + " ..."
}

func statementVerb(sql string) string {
	verb, _, _ := strings.Cut(strings.TrimSpace(sql), " ")
	return strings.ToUpper(verb)
}

// MapGormLogLevel maps a zap level name to a GORM log level
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
