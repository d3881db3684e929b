// Package logging sets up the optional debug log.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "freeslot-debug.log"

// New returns a logger for the CLI. When disabled it returns a no-op
// logger. When enabled, JSON entries at debug level and above are appended
// to path (DebugLogPath if empty). The returned func flushes and closes
// the file.
func New(enabled bool, path string) (*zap.Logger, func(), error) {
	if !enabled {
		return zap.NewNop(), func() {}, nil
	}
	if path == "" {
		path = DebugLogPath
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("creating debug log: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	logger := zap.New(core).Named("freeslot")

	logger.Debug("debug log started", zap.String("log_file", path))

	closeFn := func() {
		logger.Debug("debug log closed")
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closeFn, nil
}
