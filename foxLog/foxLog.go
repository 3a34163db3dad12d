package foxLog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	mu           sync.Mutex
	zl           *zap.Logger
	closeSink    func()
	toFile       bool
	DebugEnabled bool
	RunId        string
}

const (
	Info       = "Info"
	Debug      = "Debug"
	Error      = "Error"
	Warn       = "Warn"
	FatalError = "FatalError"
)

// NewLogger opens a logger writing to logFilePath, or to stdout when the path is blank.
// A blank runId is replaced with a fresh uuid so every entry of one sweep can be grouped.
func NewLogger(logFilePath, runId string, debugEnabled bool) (*Logger, error) {
	sinkPath := "stdout"
	if logFilePath != "" {
		sinkPath = filepath.Clean(logFilePath)
	}

	sink, closeSink, err := zap.Open(sinkPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	if runId == "" {
		runId = uuid.NewString()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.999999")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, zapcore.DebugLevel)

	return &Logger{
		zl:           zap.New(core).With(zap.String("run", runId)),
		closeSink:    closeSink,
		toFile:       logFilePath != "",
		RunId:        runId,
		DebugEnabled: debugEnabled,
	}, nil
}

func (l *Logger) Log(logType, description string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.zl == nil {
		log.Printf("LOG ERROR: logger closed, dropped entry: %s", description)
		return
	}

	switch logType {
	case Debug:
		if !l.DebugEnabled {
			return
		}
		l.zl.Debug(description)
	case Warn:
		l.zl.Warn(description)
	case Error:
		l.zl.Error(description)
	case FatalError:
		// zap's Fatal exits before Close can flush, so log at error level and exit ourselves
		l.zl.Error(description, zap.Bool("fatal", true))
	default:
		l.zl.Info(description)
	}
}

// Simplified helper methods
func (l *Logger) Debug(description string) { l.Log(Debug, description) }
func (l *Logger) Info(description string)  { l.Log(Info, description) }
func (l *Logger) Warn(description string)  { l.Log(Warn, description) }
func (l *Logger) Error(description string) { l.Log(Error, description) }

func (l *Logger) FatalError(description string) {
	l.Log(FatalError, description)
	l.Close()
	os.Exit(1)
}

func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.zl != nil {
		// Sync on stdout errors on some terminals
		if err := l.zl.Sync(); err != nil && l.toFile {
			log.Printf("LOG ERROR: Failed to sync log: %v", err)
		}
		l.closeSink()
		l.zl = nil
	}
}
