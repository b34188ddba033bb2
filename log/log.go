package log

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a no-op until InitLogger runs, so packages can log from tests
// without any setup.
var Logger = zap.NewNop()

// Config controls where and how flatcli writes its log.
type Config struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`   // console or json
	Filename   string `toml:"filename"` // empty means stderr
	MaxSize    int    `toml:"max-size"` // megabytes
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

// DefaultConfig logs warnings and above to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
	}
}

func InitLogger(cfg Config) error {
	logger, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}

func NewLogger(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
	} else {
		level.SetLevel(zapcore.WarnLevel)
	}

	encoder, err := newEncoder(cfg.Format, cfg.Filename == "")
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, newSyncer(cfg), level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel)), nil
}

func newEncoder(format string, color bool) (zapcore.Encoder, error) {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(time.RFC3339))
	}
	switch format {
	case "", "console":
		if color {
			config.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			config.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		return zapcore.NewConsoleEncoder(config), nil
	case "json":
		return zapcore.NewJSONEncoder(config), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func newSyncer(cfg Config) zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}
