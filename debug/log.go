package debug

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	file   *os.File
	mu     sync.Mutex
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Enable starts debug logging to path (truncated on each start).
// stdout belongs to the TUI, so logs only ever go to a file.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	file = f

	// each log file starts its LogEvery counts afresh
	countersMu.Lock()
	clear(counters)
	countersMu.Unlock()

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), zapcore.DebugLevel)

	l := zap.New(core)
	logger.Store(l)
	l.Named("debug").Info("=== Debug logging started ===")

	return nil
}

// Disable stops debug logging
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if l := logger.Swap(nil); l != nil {
		_ = l.Sync()
	}
	if file != nil {
		file.Close()
		file = nil
	}
}

// L returns the structured logger (a no-op logger while disabled)
func L() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// Log writes a message to the debug log
func Log(category, format string, args ...any) {
	l := logger.Load()
	if l == nil {
		return
	}
	l.Named(category).Sugar().Debugf(format, args...)
}

// LogEvery logs only every N calls (use for high-frequency events)
var (
	counters   = make(map[string]int)
	countersMu sync.Mutex
)

func LogEvery(n int, category, format string, args ...any) {
	countersMu.Lock()
	key := category + format
	counters[key]++
	count := counters[key]
	countersMu.Unlock()

	if count%n == 0 {
		Log(category, format+" (every %d, count=%d)", append(args, n, count)...)
	}
}
