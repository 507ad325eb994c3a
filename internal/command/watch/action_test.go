package watch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/config"
)

func newTestRerenderer(t *testing.T) (*rerenderer, string) {
	t.Helper()
	dir := t.TempDir()
	components := filepath.Join(dir, "components")
	require.NoError(t, os.MkdirAll(components, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.mizui"), []byte("[{{ component(nav) }}]"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(components, "nav.mizui"), []byte("v1 {{ name }}"), 0o600))

	cfg := config.DefaultConfig()
	cfg.BasePath = components
	cfg.ErrorLog = ""
	cfg.CrashLog = ""

	return &rerenderer{
		cfg:        &cfg,
		identifier: filepath.Join(dir, "page.mizui"),
		sets:       []string{"name=Ada"},
		output:     filepath.Join(dir, "out.html"),
		stdout:     &bytes.Buffer{},
		stderr:     &bytes.Buffer{},
	}, dir
}

func TestRerenderer_Dirs(t *testing.T) {
	w, dir := newTestRerenderer(t)
	w.dataPath = filepath.Join(dir, "data.yaml")

	// 数据文件与模板同目录，只保留一次
	assert.Equal(t, []string{dir, filepath.Join(dir, "components")}, w.dirs())

	w.cfg.BasePath = filepath.Join(dir, "missing")
	assert.Equal(t, []string{dir}, w.dirs())
}

func TestRerenderer_Relevant(t *testing.T) {
	w, dir := newTestRerenderer(t)
	w.dataPath = filepath.Join(dir, "data.yaml")

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"template write", fsnotify.Event{Name: w.identifier, Op: fsnotify.Write}, true},
		{"component create", fsnotify.Event{Name: filepath.Join(dir, "components", "x.mizui"), Op: fsnotify.Create}, true},
		{"data rename", fsnotify.Event{Name: w.dataPath, Op: fsnotify.Rename}, true},
		{"output write", fsnotify.Event{Name: w.output, Op: fsnotify.Write}, false},
		{"chmod only", fsnotify.Event{Name: w.identifier, Op: fsnotify.Chmod}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.ev))
		})
	}
}

func TestRerenderer_Loop(t *testing.T) {
	w, dir := newTestRerenderer(t)
	events := make(chan fsnotify.Event)
	errs := make(chan error)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.loop(ctx, events, errs) }()

	readOutput := func() string {
		content, err := os.ReadFile(w.output)
		if err != nil {
			return ""
		}
		return string(content)
	}

	require.Eventually(t, func() bool { return readOutput() == "[v1 Ada]" }, 2*time.Second, 10*time.Millisecond)

	nav := filepath.Join(dir, "components", "nav.mizui")
	require.NoError(t, os.WriteFile(nav, []byte("v2 {{ name }}"), 0o600))
	events <- fsnotify.Event{Name: nav, Op: fsnotify.Write}

	require.Eventually(t, func() bool { return readOutput() == "[v2 Ada]" }, 2*time.Second, 10*time.Millisecond)

	errs <- assert.AnError

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestRerenderer_LoopClosedEvents(t *testing.T) {
	w, _ := newTestRerenderer(t)
	events := make(chan fsnotify.Event)
	close(events)

	require.NoError(t, w.loop(context.Background(), events, make(chan error)))
	assert.FileExists(t, w.output)
}
