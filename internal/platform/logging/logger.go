package logging

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

type Logger struct {
	zap    *zap.Logger
	closed atomic.Bool
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewNop())
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// NewJSON logs JSON lines to stderr.
func NewJSON(level Level) *Logger {
	return newWithEncoder(zapcore.NewJSONEncoder(encoderConfig()), os.Stderr, level)
}

// NewConsole logs human readable lines to w.
func NewConsole(level Level, w io.Writer) *Logger {
	cfg := encoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return newWithEncoder(zapcore.NewConsoleEncoder(cfg), w, level)
}

// NewForTerminal picks the console encoder when f is a terminal and JSON
// otherwise, so piped runs (cron, systemd) keep machine-readable logs.
func NewForTerminal(level Level, f *os.File) *Logger {
	if f == nil {
		return NewJSON(level)
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewConsole(level, f)
	}
	return newWithEncoder(zapcore.NewJSONEncoder(encoderConfig()), f, level)
}

func newWithEncoder(enc zapcore.Encoder, w io.Writer, level Level) *Logger {
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level)
	// Skip the level method and write so callers see their own line.
	return &Logger{zap: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(zapcore.ErrorLevel))}
}

func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

func Default() *Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	return NewNop()
}

func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	defaultLogger.Store(logger)
}

// Sync flushes buffered entries once. Its error is dropped: fsync on stderr
// or a terminal fails with EINVAL and nothing is lost.
func (l *Logger) Sync() error {
	if l != nil && l.zap != nil && l.closed.CompareAndSwap(false, true) {
		_ = l.zap.Sync()
	}
	return nil
}

func (l *Logger) Debug(msg string, kv ...any) { l.write(context.Background(), zapcore.DebugLevel, msg, kv) }
func (l *Logger) Info(msg string, kv ...any) { l.write(context.Background(), zapcore.InfoLevel, msg, kv) }
func (l *Logger) Warn(msg string, kv ...any) { l.write(context.Background(), zapcore.WarnLevel, msg, kv) }

func (l *Logger) DebugContext(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, zapcore.DebugLevel, msg, kv)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, zapcore.InfoLevel, msg, kv)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, zapcore.WarnLevel, msg, kv)
}

func (l *Logger) write(ctx context.Context, level zapcore.Level, msg string, kv []any) {
	if l == nil || l.zap == nil {
		l = Default()
	}
	ce := l.zap.Check(level, msg)
	if ce == nil {
		return
	}
	ce.Write(append(pairsToFields(kv), spanFields(ctx)...)...)
}

// spanFields correlates a log line with the active span, if any.
func spanFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.Stringer("trace_id", sc.TraceID()),
		zap.Stringer("span_id", sc.SpanID()),
	}
}

// pairsToFields turns alternating key/value arguments into zap fields. A
// non-string key becomes "arg" and a trailing key gets a nil value.
func pairsToFields(kv []any) []zap.Field {
	fields := make([]zap.Field, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key, _ := kv[i].(string)
		if key == "" {
			key = "arg"
		}

		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		if err, ok := value.(error); ok {
			fields = append(fields, zap.NamedError(key, err))
		} else {
			fields = append(fields, zap.Any(key, value))
		}
	}
	return fields
}
