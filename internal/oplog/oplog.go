// Package oplog содержит процессный буфер журнала операций.
// Буфер создаётся один раз на процесс и передаётся явно; он только
// дополняется, прочитать и очистить его может владелец.
package oplog

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Buffer накапливает строки журнала на время жизни процесса.
type Buffer struct {
	mu    sync.Mutex
	lines []string
}

// NewBuffer создаёт пустой буфер журнала.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write добавляет запись журнала в буфер; каждая запись — одна строка.
func (b *Buffer) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")

	b.mu.Lock()
	defer b.mu.Unlock()
	if line != "" {
		b.lines = append(b.lines, line)
	}
	return len(p), nil
}

// Sync реализует zapcore.WriteSyncer; буферу в памяти сбрасывать нечего.
func (b *Buffer) Sync() error {
	return nil
}

// Lines возвращает копию накопленных строк.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Len возвращает число накопленных строк.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Clear удаляет все накопленные строки.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

// NewLogger создаёт zap-логгер, пишущий в указанный буфер.
func NewLogger(b *Buffer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(b),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
