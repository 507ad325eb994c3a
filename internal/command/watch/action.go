package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/command"
	"github.com/lwmacct/251207-go-pkg-mizui/internal/config"
	"github.com/lwmacct/251207-go-pkg-mizui/pkg/mizui"
)

func action(ctx context.Context, cmd *cli.Command) error {
	identifier, err := command.TemplateArg(cmd)
	if err != nil {
		return err
	}

	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	w := &rerenderer{
		cfg:        cfg,
		identifier: identifier,
		dataPath:   cmd.String("data"),
		sets:       cmd.StringSlice("set"),
		output:     cmd.String("output"),
		stdout:     command.Stdout(cmd),
		stderr:     command.Stderr(cmd),
	}
	for _, dir := range w.dirs() {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		slog.Info("Watching", "dir", dir)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.loop(ctx, watcher.Events, watcher.Errors)
}

// rerenderer 每次变化都用新的 Renderer 渲染，Renderer 的缓存不会感知文件修改。
type rerenderer struct {
	cfg        *config.Config
	identifier string
	dataPath   string
	sets       []string
	output     string
	stdout     io.Writer
	stderr     io.Writer
}

// dirs 返回需要监听的目录：模板所在目录、组件根目录与数据文件目录。
func (w *rerenderer) dirs() []string {
	candidates := []string{filepath.Dir(w.identifier), w.cfg.BasePath}
	if w.dataPath != "" {
		candidates = append(candidates, filepath.Dir(w.dataPath))
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, dir := range candidates {
		clean := filepath.Clean(dir)
		if seen[clean] {
			continue
		}
		if info, err := os.Stat(clean); err != nil || !info.IsDir() {
			continue
		}
		seen[clean] = true
		dirs = append(dirs, clean)
	}

	return dirs
}

// relevant 报告事件是否应触发渲染：模板、组件或数据文件的写入、创建、删除与重命名。
func (w *rerenderer) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Clean(ev.Name)
	if name == filepath.Clean(w.identifier) {
		return true
	}
	if w.dataPath != "" && name == filepath.Clean(w.dataPath) {
		return true
	}

	return filepath.Ext(name) == mizui.ComponentExt
}

func (w *rerenderer) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	w.render()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Watch stopped")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				slog.Debug("Change detected", "path", ev.Name, "op", ev.Op.String())
				w.render()
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

// render 渲染一次；失败只记录日志，继续监听。
func (w *rerenderer) render() {
	data, err := command.LoadData(w.dataPath, w.sets)
	if err != nil {
		slog.Error("Load data failed", "error", err)
		return
	}

	r, closer, err := command.NewRenderer(w.cfg, w.stderr)
	if err != nil {
		slog.Error("Create renderer failed", "error", err)
		return
	}
	defer func() { _ = closer.Close() }()

	out, err := r.RenderE(w.identifier, data)
	if err != nil {
		return // 已写入错误日志
	}
	if err := command.WriteOutput(w.output, out, w.stdout); err != nil {
		slog.Error("Write output failed", "error", err)
		return
	}
	slog.Info("Rendered", "template", w.identifier, "output", w.output)
}
