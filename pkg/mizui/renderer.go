package mizui

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Renderer 串联 Fetch → Inline → Interpolate → Compile → Invoke。
//
// Renderer 持有自己的缓存，可并发使用。
type Renderer struct {
	syntax   Syntax
	basePath string
	fs       FileSystem
	cache    Cache
	logger   *slog.Logger
	crash    CrashRecorder

	store   *Store
	inliner *Inliner
	compile func(text, identifier string) (*Template, error)

	mu sync.Mutex // 保护编译缓存的 check-compile-store
}

// New 创建 Renderer。
func New(opts ...Option) *Renderer {
	r := &Renderer{
		syntax:  DefaultSyntax,
		fs:      OSFileSystem{},
		logger:  slog.Default(),
		crash:   DiscardCrashes,
		compile: Compile,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = NewMapCache()
	}

	r.store = NewStore(r.fs, r.cache)
	r.inliner = NewInliner(r.store, r.fs, r.basePath, r.syntax)

	return r
}

// Render 渲染 identifier 指向的模板，任何失败都返回空字符串。
func (r *Renderer) Render(identifier string, data map[string]any) string {
	out, _ := r.RenderE(identifier, data)

	return out
}

// RenderE 与 [Renderer.Render] 相同，但同时返回错误。
//
// 错误已经写入错误日志；[ErrRenderInvocation] 另外写入崩溃记录。
func (r *Renderer) RenderE(identifier string, data map[string]any) (string, error) {
	out, err := r.render(identifier, data)
	if err == nil {
		return out, nil
	}

	kind := KindOf(err)
	attrs := []any{"identifier", identifier, "kind", kind.String(), "error", err}
	var e *Error
	if errors.As(err, &e) && e.Line > 0 {
		attrs = append(attrs, "line", e.Line)
	}
	r.logger.Error("Rendering failed: "+kind.Title(), attrs...)

	if errors.Is(err, ErrRenderInvocation) {
		rec := CrashRecord{
			Timestamp:  time.Now().UTC(),
			Identifier: identifier,
			Data:       data,
			Error:      err.Error(),
		}
		if cerr := r.crash.Record(rec); cerr != nil {
			r.logger.Warn("Crash record not written", "identifier", identifier, "error", cerr)
		}
	}

	return "", err
}

func (r *Renderer) render(identifier string, data map[string]any) (string, error) {
	tpl, err := r.Prepare(identifier)
	if err != nil {
		return "", err
	}

	out, err := tpl.Execute(data)
	if err != nil {
		return "", &Error{Kind: KindRenderInvocation, Identifier: identifier, Err: err}
	}

	return out, nil
}

// Prepare 执行 Fetch → Inline → Interpolate → Compile，返回可执行的 [Template]。
//
// 错误原样返回，不写日志。
func (r *Renderer) Prepare(identifier string) (*Template, error) {
	raw, err := r.store.Get(identifier)
	if err != nil {
		return nil, err
	}

	text, err := r.inliner.Inline(raw, 0, identifier)
	if err != nil {
		return nil, err
	}

	src, err := Interpolate(text, identifier, r.syntax)
	if err != nil {
		return nil, err
	}

	return r.compiled(src, identifier)
}

// compiled 返回 src 的编译结果，相同文本只编译一次。
func (r *Renderer) compiled(src, identifier string) (*Template, error) {
	key := compiledKeyPrefix + src

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.cache.Get(key); ok {
		if tpl, ok := v.(*Template); ok {
			return tpl, nil
		}
	}

	tpl, err := r.compile(src, identifier)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, tpl)
	r.logger.Debug("Compiled template", "identifier", identifier, "segments", len(tpl.segments))

	return tpl, nil
}
