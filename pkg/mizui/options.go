package mizui

import "log/slog"

// Option Renderer 构造选项。
type Option func(*Renderer)

// WithSyntax 设置占位符定界符，默认 [DefaultSyntax]。
func WithSyntax(s Syntax) Option {
	return func(r *Renderer) {
		r.syntax = s
	}
}

// WithBasePath 设置组件根目录。
func WithBasePath(path string) Option {
	return func(r *Renderer) {
		r.basePath = path
	}
}

// WithFileSystem 替换文件系统，默认 [OSFileSystem]。
func WithFileSystem(fsys FileSystem) Option {
	return func(r *Renderer) {
		r.fs = fsys
	}
}

// WithCache 替换缓存，默认 [NewMapCache]（永不淘汰）。
func WithCache(c Cache) Option {
	return func(r *Renderer) {
		r.cache = c
	}
}

// WithLogger 设置错误日志，默认 slog.Default()。
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithCrashRecorder 设置崩溃记录，默认 [DiscardCrashes]。
func WithCrashRecorder(c CrashRecorder) Option {
	return func(r *Renderer) {
		r.crash = c
	}
}
