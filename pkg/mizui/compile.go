package mizui

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ═══════════════════════════════════════════════════════════════════════════
// 编译结果
// ═══════════════════════════════════════════════════════════════════════════

// segment 为文本片段或点分路径查找，二者互斥。
type segment struct {
	literal string
	path    []string
}

// Template 编译后的模板，可被重复、并发地执行。
type Template struct {
	source   string
	segments []segment
}

// Source 返回编译所用的模板字面量文本。
func (t *Template) Source() string {
	return t.source
}

// Execute 以 data 求值模板。
//
// 路径上任一层缺失或为 nil 时该占位符输出空字符串；
// 值无法转为文本（func、chan 等）或格式化时 panic 则返回错误。
func (t *Template) Execute(data map[string]any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while rendering: %v", r)
		}
	}()

	var buf strings.Builder
	for _, seg := range t.segments {
		if seg.path == nil {
			buf.WriteString(seg.literal)
			continue
		}

		val, ok := lookup(data, seg.path)
		if !ok {
			continue
		}
		s, err := formatValue(val)
		if err != nil {
			return "", fmt.Errorf("%s: %w", strings.Join(seg.path, "."), err)
		}
		buf.WriteString(s)
	}

	return buf.String(), nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 模板字面量解析
// ═══════════════════════════════════════════════════════════════════════════

// Compile 将 [Interpolate] 输出的模板字面量解析为 [Template]。
//
// 支持语法：
//   - $$ - 字面量 "$"
//   - ${a.b.c} - 点分路径查找，每段须为标识符
//
// 其余 "$" 用法、未闭合的 "${" 与非法路径均返回 [ErrCompilation]。
func Compile(text, identifier string) (*Template, error) {
	tpl := &Template{source: text}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			tpl.segments = append(tpl.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		ch := text[i]
		if ch != '$' {
			lit.WriteByte(ch)
			i++
			continue
		}
		if i+1 >= len(text) {
			return nil, compileError(identifier, fmt.Errorf("dangling '$' at offset %d", i))
		}

		switch text[i+1] {
		case '$':
			lit.WriteByte('$')
			i += 2
		case '{':
			end := strings.IndexByte(text[i+2:], '}')
			if end == -1 {
				return nil, compileError(identifier, fmt.Errorf("unterminated '${' at offset %d", i))
			}
			expr := text[i+2 : i+2+end]
			path, err := parsePath(expr)
			if err != nil {
				return nil, compileError(identifier, err)
			}
			flush()
			tpl.segments = append(tpl.segments, segment{path: path})
			i += end + 3
		default:
			return nil, compileError(identifier, fmt.Errorf("unescaped '$' at offset %d", i))
		}
	}
	flush()

	return tpl, nil
}

func compileError(identifier string, err error) error {
	return &Error{Kind: KindCompilation, Identifier: identifier, Err: err}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func parsePath(expr string) ([]string, error) {
	if expr == "" {
		return nil, errors.New("empty expression")
	}

	parts := strings.Split(expr, ".")
	for _, part := range parts {
		if !isIdentifier(part) {
			return nil, fmt.Errorf("expression %q: %q is not a property name", expr, part)
		}
	}

	return parts, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if !isIdentChar(r) {
			return false
		}
	}

	return true
}
