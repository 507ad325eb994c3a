package mizui

import (
	"errors"
	"fmt"
)

// Syntax 占位符定界符，按字面匹配。
type Syntax struct {
	Open  string
	Close string
}

// DefaultSyntax 默认定界符 {{ }}。
var DefaultSyntax = Syntax{Open: "{{", Close: "}}"}

// SyntaxFromPair 由 [open, close] 构造 Syntax。
func SyntaxFromPair(pair []string) (Syntax, error) {
	if len(pair) != 2 {
		return Syntax{}, fmt.Errorf("mizui: syntax needs exactly 2 delimiters, got %d", len(pair))
	}
	s := Syntax{Open: pair[0], Close: pair[1]}

	return s, s.Validate()
}

// Validate 校验定界符非空且互不相同。
func (s Syntax) Validate() error {
	if s.Open == "" || s.Close == "" {
		return errors.New("mizui: syntax delimiters must not be empty")
	}
	if s.Open == s.Close {
		return fmt.Errorf("mizui: open and close delimiters are both %q", s.Open)
	}

	return nil
}
