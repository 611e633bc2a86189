package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

type globalLogger struct {
	mu      sync.RWMutex
	verbose bool
	level   zap.AtomicLevel
	sugar   *zap.SugaredLogger
	logFile *os.File
}

var global *globalLogger

func init() {
	global = &globalLogger{
		level: zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
	global.rebuild()
}

func encoderConfig(color bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("06-01-02 15:04:05"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}

// rebuild recreates the zap core; callers must hold the write lock except
// during init.
func (gl *globalLogger) rebuild() {
	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig(true)),
		zapcore.Lock(os.Stdout),
		gl.level,
	)

	core := console
	if gl.logFile != nil {
		file := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig(false)),
			zapcore.Lock(gl.logFile),
			gl.level,
		)
		core = zapcore.NewTee(console, file)
	}

	gl.sugar = zap.New(core).Sugar()
}

func SetVerbose(verbose bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.verbose = verbose
	if verbose {
		global.level.SetLevel(zapcore.DebugLevel)
	} else {
		global.level.SetLevel(zapcore.InfoLevel)
	}
}

func IsVerbose() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.verbose
}

// AddLogFile mirrors console output into the given file (append mode).
func AddLogFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	global.logFile = f
	global.rebuild()
	return nil
}

// Sync flushes buffered log entries; call once before process exit.
func Sync() {
	global.mu.RLock()
	defer global.mu.RUnlock()
	_ = global.sugar.Sync()
}

func (gl *globalLogger) log(level LogLevel, format string, args ...interface{}) {
	gl.mu.RLock()
	sugar := gl.sugar
	gl.mu.RUnlock()

	switch level {
	case DEBUG:
		sugar.Debugf(format, args...)
	case INFO:
		sugar.Infof(format, args...)
	case WARN:
		sugar.Warnf(format, args...)
	case ERROR:
		sugar.Errorf(format, args...)
	case FATAL:
		sugar.Fatalf(format, args...)
	}
}

func Debug(format string, args ...interface{}) {
	global.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	global.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	global.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	global.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	global.log(FATAL, format, args...)
}

func GetLogFromLevel(level LogLevel) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		global.log(level, format, args...)
	}
}
