package mizui

import (
	"fmt"
	"strings"
)

// reservedChars 不能出现在占位符表达式中的字符。
const reservedChars = "${}"

// Interpolate 校验语法后把每个占位符改写为 ${path}。
//
// 输出是一段模板字面量：文本中的 "$" 转义为 "$$"，
// 表达式原样写入 ${...}。两个模板改写后文本相同即共享同一个编译结果。
func Interpolate(text, identifier string, syntax Syntax) (string, error) {
	if err := Check(text, identifier, syntax); err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.Grow(len(text))
	for _, tok := range Tokenize(text, syntax) {
		switch tok.Type {
		case TokenText:
			buf.WriteString(strings.ReplaceAll(tok.Value, "$", "$$"))
		case TokenComponent:
			return "", &Error{
				Kind:       KindInterpolation,
				Identifier: identifier,
				Err:        fmt.Errorf("line %d: unexpanded component %q", tok.Line, tok.Value),
			}
		case TokenPlaceholder:
			if strings.ContainsAny(tok.Value, reservedChars) {
				return "", &Error{
					Kind:       KindInterpolation,
					Identifier: identifier,
					Err:        fmt.Errorf("line %d: expression %q contains one of %q", tok.Line, tok.Value, reservedChars),
				}
			}
			buf.WriteString("${")
			buf.WriteString(tok.Value)
			buf.WriteString("}")
		}
	}

	return buf.String(), nil
}
