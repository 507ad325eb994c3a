package mizui

import (
	"errors"
	"fmt"
	"strings"
)

// Kind 错误类别。
type Kind int

const (
	KindTemplateNotFound Kind = iota + 1
	KindComponentNotFound
	KindRecursionTooDeep
	KindSyntax
	KindInterpolation
	KindCompilation
	KindRenderInvocation
)

func (k Kind) String() string {
	switch k {
	case KindTemplateNotFound:
		return "template not found"
	case KindComponentNotFound:
		return "component not found"
	case KindRecursionTooDeep:
		return "recursion too deep"
	case KindSyntax:
		return "syntax error"
	case KindInterpolation:
		return "interpolation error"
	case KindCompilation:
		return "compilation error"
	case KindRenderInvocation:
		return "render error"
	default:
		return "unknown error"
	}
}

// Title 返回首字母大写的类别名，用作日志消息，如 "Component not found"。
func (k Kind) Title() string {
	s := k.String()

	return strings.ToUpper(s[:1]) + s[1:]
}

// 各类别的哨兵错误，配合 errors.Is 使用。
var (
	ErrTemplateNotFound  = &Error{Kind: KindTemplateNotFound}
	ErrComponentNotFound = &Error{Kind: KindComponentNotFound}
	ErrRecursionTooDeep  = &Error{Kind: KindRecursionTooDeep}
	ErrSyntax            = &Error{Kind: KindSyntax}
	ErrInterpolation     = &Error{Kind: KindInterpolation}
	ErrCompilation       = &Error{Kind: KindCompilation}
	ErrRenderInvocation  = &Error{Kind: KindRenderInvocation}
)

// Error 渲染流水线中任一阶段的错误。
//
// Identifier 为出错时正在处理的模板路径；Path 仅用于组件错误；
// Line 与 Delim 仅用于语法错误。
type Error struct {
	Kind       Kind
	Identifier string
	Path       string
	Line       int
	Delim      string
	Err        error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindTemplateNotFound:
		msg = fmt.Sprintf("template not found: %s", e.Identifier)
	case KindComponentNotFound:
		msg = fmt.Sprintf("component not found: %s", e.Path)
	case KindRecursionTooDeep:
		msg = fmt.Sprintf("recursion too deep in %s", e.Identifier)
	case KindSyntax:
		msg = fmt.Sprintf("syntax error in %s at line %d: unbalanced %q", e.Identifier, e.Line, e.Delim)
	default:
		msg = fmt.Sprintf("%s in %s", e.Kind, e.Identifier)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 按 Kind 比较，使 errors.Is(err, ErrSyntax) 成立。
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Kind == e.Kind
}

// KindOf 返回 err 链中第一个 *Error 的类别，没有则返回 0。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
