package templexp

import (
	"fmt"
	"os"
	"strings"
)

// Vars 一次展开使用的变量快照，赋值类操作会修改它。
type Vars map[string]string

// Environ 返回当前进程环境变量的快照。
func Environ() Vars {
	vars := make(Vars)
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok {
			vars[name] = value
		}
	}

	return vars
}

// ExpandTemplate 以当前环境变量展开 text。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置时为空
//   - ${VAR:-word} / ${VAR-word} - 缺省值
//   - ${VAR:+word} / ${VAR+word} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
//   - ${VAR:=word} / ${VAR=word} - 缺省值并赋值
//
// 带 ":" 的形式把空值视为未设置。仅必填校验失败时返回 error。
func ExpandTemplate(text string) (string, error) {
	return Expand(text, Environ())
}

// Expand 以 vars 展开 text，见 [ExpandTemplate]。
func Expand(text string, vars Vars) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '$' || i+1 >= len(text) {
			buf.WriteByte(text[i])
			i++
			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i += 2
			continue
		case '{':
		default:
			buf.WriteByte('$')
			i++
			continue
		}

		end := closingBrace(text, i+2)
		if end < 0 {
			buf.WriteByte('$')
			i++
			continue
		}

		p, ok := parseParam(text[i+2 : end])
		if !ok {
			buf.WriteString(text[i : end+1])
			i = end + 1
			continue
		}
		val, err := p.eval(vars)
		if err != nil {
			return "", err
		}
		buf.WriteString(val)
		i = end + 1
	}

	return buf.String(), nil
}

// closingBrace 返回与 start 之前的 "${" 配对的 "}" 位置，跳过嵌套的 ${...}。
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

// ═══════════════════════════════════════════════════════════════════════════
// 参数表达式
// ═══════════════════════════════════════════════════════════════════════════

// param 解析后的 ${name[:]op word}；op 为 0 表示纯变量引用。
type param struct {
	name  string
	colon bool
	op    byte
	word  string
}

func isNameStart(ch byte) bool {
	return ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

func isOp(ch byte) bool {
	return strings.IndexByte("-+?=", ch) >= 0
}

func parseParam(expr string) (param, bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return param{}, false
	}

	n := 1
	for n < len(expr) && isNameChar(expr[n]) {
		n++
	}
	p := param{name: expr[:n]}
	rest := expr[n:]

	if rest == "" {
		return p, true
	}
	if rest[0] == ':' && len(rest) >= 2 && isOp(rest[1]) {
		p.colon, p.op, p.word = true, rest[1], rest[2:]
		return p, true
	}
	if isOp(rest[0]) {
		p.op, p.word = rest[0], rest[1:]
		return p, true
	}

	return param{}, false
}

func (p param) eval(vars Vars) (string, error) {
	val, isSet := vars[p.name]
	missing := !isSet || (p.colon && val == "")

	switch p.op {
	case '-':
		if missing {
			return Expand(p.word, vars)
		}
	case '=':
		if missing {
			word, err := Expand(p.word, vars)
			if err != nil {
				return "", err
			}
			vars[p.name] = word
			return word, nil
		}
	case '+':
		if missing {
			return "", nil
		}
		return Expand(p.word, vars)
	case '?':
		if missing {
			if p.word == "" {
				return "", fmt.Errorf("templexp: %s: parameter null or not set", p.name)
			}
			return "", fmt.Errorf("templexp: %s: %s", p.name, p.word)
		}
	}

	return val, nil
}
