package mizui

import (
	"path/filepath"
	"strings"
)

const (
	// MaxDepth 组件嵌套层数上限，超过即报 [ErrRecursionTooDeep]。
	MaxDepth = 10
	// ComponentExt 组件文件扩展名。
	ComponentExt = ".mizui"
)

// Inliner 递归展开 component(name) 标记。
type Inliner struct {
	store    *Store
	fs       FileSystem
	basePath string
	syntax   Syntax
}

// NewInliner 创建 Inliner，组件路径相对于 basePath 解析。
func NewInliner(store *Store, fsys FileSystem, basePath string, syntax Syntax) *Inliner {
	return &Inliner{store: store, fs: fsys, basePath: basePath, syntax: syntax}
}

// ComponentPath 返回组件 name 对应的文件路径。
func (in *Inliner) ComponentPath(name string) string {
	return filepath.Join(in.basePath, name+ComponentExt)
}

// Inline 将 text 中的组件标记替换为组件内容，深度优先。
//
// 组件内的标记在外层继续扫描之前展开；depth 超过 [MaxDepth] 时失败，
// 因此自引用或互相引用的组件总会在有限步内报错。
func (in *Inliner) Inline(text string, depth int, identifier string) (string, error) {
	if depth > MaxDepth {
		return "", &Error{Kind: KindRecursionTooDeep, Identifier: identifier}
	}

	tokens := Tokenize(text, in.syntax)

	var buf strings.Builder
	buf.Grow(len(text))
	for _, tok := range tokens {
		if tok.Type != TokenComponent {
			buf.WriteString(tok.Raw)
			continue
		}

		path := in.ComponentPath(tok.Value)
		if !in.fs.Exists(path) {
			return "", &Error{Kind: KindComponentNotFound, Identifier: identifier, Path: path}
		}

		raw, err := in.store.Get(path)
		if err != nil {
			return "", err
		}

		expanded, err := in.Inline(raw, depth+1, path)
		if err != nil {
			return "", err
		}
		buf.WriteString(expanded)
	}

	return buf.String(), nil
}
