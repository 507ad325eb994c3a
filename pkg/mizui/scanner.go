package mizui

import "strings"

// TokenType 词法单元类型。
type TokenType int

const (
	TokenText TokenType = iota
	TokenPlaceholder
	TokenComponent
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenPlaceholder:
		return "placeholder"
	case TokenComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Token 模板词法单元。
//
// Value 对文本为原文，对占位符为去除首尾空白的表达式，对组件为组件名；
// Raw 为单元在模板中的原始文本；Line 从 1 开始。
type Token struct {
	Type  TokenType
	Value string
	Raw   string
	Line  int
}

const componentKeyword = "component("

// Tokenize 单遍扫描 text，切分为文本、占位符与组件引用。
//
// 开定界符之后的第一个闭定界符结束一个标记；标记不跨行，
// 找不到同一行内闭定界符的开定界符按普通文本处理。
func Tokenize(text string, syntax Syntax) []Token {
	var tokens []Token
	lines := lineCounter{text: text, line: 1}

	start := 0
	for i := 0; i < len(text); {
		j := strings.Index(text[i:], syntax.Open)
		if j < 0 {
			break
		}
		openAt := i + j
		exprAt := openAt + len(syntax.Open)

		k := strings.Index(text[exprAt:], syntax.Close)
		if k < 0 {
			break
		}
		closeAt := exprAt + k

		body := text[exprAt:closeAt]
		if strings.ContainsRune(body, '\n') {
			i = openAt + 1
			continue
		}

		if openAt > start {
			tokens = append(tokens, Token{
				Type:  TokenText,
				Value: text[start:openAt],
				Raw:   text[start:openAt],
				Line:  lines.at(start),
			})
		}

		end := closeAt + len(syntax.Close)
		tokens = append(tokens, markerToken(body, text[openAt:end], lines.at(openAt)))

		start = end
		i = end
	}

	if start < len(text) {
		tokens = append(tokens, Token{
			Type:  TokenText,
			Value: text[start:],
			Raw:   text[start:],
			Line:  lines.at(start),
		})
	}

	return tokens
}

func markerToken(body, raw string, line int) Token {
	expr := strings.TrimSpace(body)
	if strings.HasPrefix(expr, componentKeyword) && strings.HasSuffix(expr, ")") {
		return Token{
			Type:  TokenComponent,
			Value: strings.TrimSpace(expr[len(componentKeyword) : len(expr)-1]),
			Raw:   raw,
			Line:  line,
		}
	}

	return Token{Type: TokenPlaceholder, Value: expr, Raw: raw, Line: line}
}

// lineCounter 按递增偏移量计算行号。
type lineCounter struct {
	text string
	pos  int
	line int
}

func (c *lineCounter) at(pos int) int {
	if pos > c.pos {
		c.line += strings.Count(c.text[c.pos:pos], "\n")
		c.pos = pos
	}

	return c.line
}
