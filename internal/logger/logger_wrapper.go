package logger

import (
	"os"
	"sync"
	"time"

	"github.com/kodistudios/playnote/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements contracts.Logger on top of zap.
type ZapLogger struct {
	mu     sync.RWMutex
	logger *zap.Logger
	level  zap.AtomicLevel
	json   bool
	file   *os.File // current FileLog destination, closed when replaced
}

// NewZapLogger creates a production logger writing JSON to stderr.
func NewZapLogger() contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return &ZapLogger{
		logger: zap.New(newCore(zap.NewProductionEncoderConfig(), true, zapcore.Lock(os.Stderr), level)),
		level:  level,
		json:   true,
	}
}

// NewStandardLogger creates a human readable console logger, used by the command line tool.
func NewStandardLogger() contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return &ZapLogger{
		logger: zap.New(newCore(cfg, false, zapcore.Lock(os.Stderr), level)),
		level:  level,
	}
}

// NewZapLoggerFrom wraps an existing zap logger. Level filtering is applied on top of the
// logger's own core, so tests can hand in an observer core at debug level.
func NewZapLoggerFrom(l *zap.Logger) contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return &ZapLogger{
		logger: l.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return &levelCore{Core: core, level: level}
		})),
		level: level,
	}
}

func newCore(cfg zapcore.EncoderConfig, json bool, ws zapcore.WriteSyncer, level zap.AtomicLevel) zapcore.Core {
	var enc zapcore.Encoder
	if json {
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewCore(enc, ws, level)
}

// Info logs a message at the INFO level
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(zapcore.InfoLevel, msg, fields...)
}

// Error logs a message at the ERROR level
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(zapcore.ErrorLevel, msg, fields...)
}

// Debug logs a message at the DEBUG level
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(zapcore.DebugLevel, msg, fields...)
}

// Warn logs a message at the WARN level
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(zapcore.WarnLevel, msg, fields...)
}

// Fatal logs a message at the FATAL level and terminates the application
func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.log(zapcore.FatalLevel, msg, fields...)
	os.Exit(1)
}

// Field returns a new instance of Field
func (z *ZapLogger) Field() contracts.Field {
	return &zapField{}
}

// SetLevel sets the logging level
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.level.SetLevel(toZapLevel(level))
}

// SetDestination redirects output. FileLog requires a path; ConsoleLog writes to stderr.
func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) {
	var (
		ws   zapcore.WriteSyncer
		file *os.File
	)
	switch dest {
	case contracts.FileLog:
		if len(filePath) == 0 || filePath[0] == "" {
			z.Warn("File log destination requested without a path; keeping current destination")
			return
		}
		f, err := os.OpenFile(filePath[0], os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			z.Error("Failed to open log file", z.Field().String("path", filePath[0]), z.Field().Error("error", err))
			return
		}
		file = f
		ws = zapcore.AddSync(f)
	default:
		ws = zapcore.Lock(os.Stderr)
	}

	// Files always get JSON.
	json := z.json || dest == contracts.FileLog
	cfg := zap.NewProductionEncoderConfig()
	if !json {
		cfg = zap.NewDevelopmentEncoderConfig()
	}

	z.mu.Lock()
	prev := z.file
	z.logger = zap.New(newCore(cfg, json, ws, z.level))
	z.file = file
	z.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
}

func (z *ZapLogger) log(level zapcore.Level, msg string, fields ...contracts.Field) {
	z.mu.RLock()
	l := z.logger
	z.mu.RUnlock()

	if ce := l.Check(level, msg); ce != nil {
		ce.Write(toZapFields(fields)...)
	}
}

func toZapLevel(level contracts.LogLevel) zapcore.Level {
	switch level {
	case contracts.DebugLevel:
		return zapcore.DebugLevel
	case contracts.WarnLevel:
		return zapcore.WarnLevel
	case contracts.ErrorLevel:
		return zapcore.ErrorLevel
	case contracts.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []contracts.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if f, ok := field.(*zapField); ok && f.key != "" {
			out = append(out, zap.Any(f.key, f.value))
		}
	}
	return out
}

// levelCore filters a wrapped core by the logger's adjustable level.
type levelCore struct {
	zapcore.Core
	level zap.AtomicLevel
}

func (c *levelCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l) && c.Core.Enabled(l)
}

func (c *levelCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.level.Enabled(e.Level) {
		return ce
	}
	return c.Core.Check(e, ce)
}

func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{Core: c.Core.With(fields), level: c.level}
}

// zapField implements contracts.Field
type zapField struct {
	key   string
	value interface{}
}

func (f *zapField) Bool(key string, val bool) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Int(key string, val int) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Float64(key string, val float64) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) String(key string, val string) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Time(key string, val time.Time) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Int64(key string, val int64) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Error(key string, val error) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Uint64(key string, val uint64) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Uint8(key string, val uint8) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Duration(key string, val time.Duration) contracts.Field {
	return &zapField{key, val}
}
