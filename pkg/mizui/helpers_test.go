package mizui

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
)

// memFS 内存文件系统，记录每个路径的读取次数。
type memFS struct {
	mu    sync.Mutex
	files map[string]string
	reads map[string]int
}

func newMemFS(files map[string]string) *memFS {
	m := &memFS{files: make(map[string]string), reads: make(map[string]int)}
	for k, v := range files {
		m.files[k] = v
	}

	return m
}

func (m *memFS) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]

	return ok
}

func (m *memFS) ReadText(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	m.reads[path]++

	return text, nil
}

func (m *memFS) write(path, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = text
}

func (m *memFS) readCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reads[path]
}

// captureLogger 返回写入 buf 的 logger。
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// memCrashes 记录到内存的 CrashRecorder。
type memCrashes struct {
	records []CrashRecord
}

func (m *memCrashes) Record(rec CrashRecord) error {
	m.records = append(m.records, rec)
	return nil
}
