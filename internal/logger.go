package internal

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger defaults to a nop so library code can log before InitLogger
// runs (and so tests do not need a logging setup).
var Logger = zap.NewNop().Sugar()

// InitLogger sets up the session logger: JSON lines into a rotating
// file plus a console tee, every entry tagged with a session id.
func InitLogger(logDir string) error {
	rotation := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "dashboard.log"),
		MaxSize:    50, // megabytes
		MaxAge:     7,  // days
		MaxBackups: 3,
		Compress:   true,
		LocalTime:  true,
	}

	config := zap.NewProductionEncoderConfig()
	config.TimeKey = "timestamp"
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(config), zapcore.AddSync(rotation), zapcore.InfoLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.AddSync(os.Stdout), zapcore.DebugLevel),
	)

	logger := zap.New(core, zap.AddCaller()).
		With(zap.String("session_id", uuid.New().String()))

	Logger = logger.Sugar()
	return nil
}
