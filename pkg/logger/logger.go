package logger

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLevel(logLevel string) zapcore.Level {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil || level < zapcore.DebugLevel || level > zapcore.FatalLevel {
		return zapcore.InfoLevel
	}
	return level
}

// NewLogger builds a JSON logger that writes to fileSyncer and stderr. A nil fileSyncer logs to stderr only.
func NewLogger(logLevel string, fileSyncer *ReopenableWriteSyncer, serviceName string) *zap.Logger {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var ws zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	if fileSyncer != nil {
		ws = zapcore.NewMultiWriteSyncer(fileSyncer, zapcore.Lock(os.Stderr))
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encodeConfig), ws, parseLevel(logLevel))
	l := zap.New(core, zap.AddCaller())
	if serviceName != "" {
		l = l.With(zap.String("service.name", serviceName))
	}
	return l
}

// ReloadOnSignal reopens the log file every time the process receives SIGHUP (logrotate).
// The returned func stops listening.
func ReloadOnSignal(l *zap.Logger, fileSyncer *ReopenableWriteSyncer) func() {
	c := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			select {
			case <-c:
				l.Info("receive logrotate SIGHUP, reloading log file")
				if e := fileSyncer.Reload(); e != nil {
					l.Error("failed to reload log file", zap.Error(e))
				} else {
					l.Info("successfully reloaded log file")
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(c)
		close(done)
	}
}
