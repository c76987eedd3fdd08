// Package logging builds the zap loggers used by filecopy and provides the log-and-exit helper.
package logging

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"os"
)

// NewLogger creates a console logger for diagnostics. Don't forget to call Sync() on the returned logger
// before exiting!
func NewLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	var encoder = zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	})
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level)))
}

// NewExitLogger creates a logger that writes nothing but the message followed by a newline. It is meant
// for Exiter, whose output is read by users and scripts.
func NewExitLogger(w io.Writer) *zap.Logger {
	var encoder = zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel))
}

type exitHook struct {
	code int
	exit func(int)
}

func (h exitHook) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {
	h.exit(h.code)
}

// Exiter writes a final message and terminates the process.
type Exiter struct {
	Logger *zap.Logger
	// Exit defaults to os.Exit.
	Exit func(int)
}

// Exitf writes the formatted message to e.Logger and terminates the process with code. It does not return
// unless Exit does. Open files are left for the OS to reclaim.
func (e Exiter) Exitf(code int, format string, args ...interface{}) {
	var exit = e.Exit
	if exit == nil {
		exit = os.Exit
	}
	e.Logger.WithOptions(zap.WithFatalHook(exitHook{code: code, exit: exit})).Fatal(fmt.Sprintf(format, args...))
}
