package mizui

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════
// 错误日志
// ═══════════════════════════════════════════════════════════════════════════

// OpenErrorLog 返回同时写入 path 与 stream 的 logger。
//
// 文件以追加方式打开；path 为空时只写 stream。调用方负责关闭返回的 io.Closer。
func OpenErrorLog(path string, stream io.Writer, level slog.Level) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: level}
	if path == "" {
		return slog.New(slog.NewTextHandler(stream, opts)), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // log path is from trusted config
	if err != nil {
		return nil, nil, fmt.Errorf("open error log %s: %w", path, err)
	}

	return slog.New(slog.NewTextHandler(io.MultiWriter(f, stream), opts)), f, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 崩溃记录
// ═══════════════════════════════════════════════════════════════════════════

// CrashRecord 执行阶段失败时的现场。
type CrashRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Identifier string    `json:"identifier"`
	Data       any       `json:"data"`
	Error      string    `json:"error"`
}

// CrashRecorder 持久化 [CrashRecord]。
type CrashRecorder interface {
	Record(rec CrashRecord) error
}

type discardCrashes struct{}

func (discardCrashes) Record(CrashRecord) error { return nil }

// DiscardCrashes 丢弃所有崩溃记录。
var DiscardCrashes CrashRecorder = discardCrashes{}

// FileCrashLog 以 JSON Lines 追加写入崩溃记录。
type FileCrashLog struct {
	path string
	mu   sync.Mutex
}

// NewFileCrashLog 创建写入 path 的 FileCrashLog，文件在首次记录时创建。
func NewFileCrashLog(path string) *FileCrashLog {
	return &FileCrashLog{path: path}
}

// Record 实现 [CrashRecorder]。
//
// 数据对象无法编码为 JSON 时（例如包含 func），以 %+v 文本代替。
func (l *FileCrashLog) Record(rec CrashRecord) error {
	line, err := json.Marshal(rec)
	if err != nil {
		rec.Data = fmt.Sprintf("%+v", rec.Data)
		if line, err = json.Marshal(rec); err != nil {
			return fmt.Errorf("encode crash record: %w", err)
		}
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // log path is from trusted config
	if err != nil {
		return fmt.Errorf("open crash log %s: %w", l.path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("write crash log %s: %w", l.path, err)
	}

	return nil
}
