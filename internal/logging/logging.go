// Package logging builds the process-wide zap logger.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing debug output to w when verbose is set,
// and a no-op logger otherwise.
func New(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.DebugLevel,
	)
	return zap.New(core)
}

// Install replaces the global logger and returns a function that restores
// the previous one.
func Install(l *zap.Logger) func() {
	return zap.ReplaceGlobals(l)
}
