package mizui

import "strings"

// Check 逐行比较开闭定界符的出现次数，首个不相等的行即报 [ErrSyntax]。
//
// 只比较数量不检查嵌套：同一行先闭后开（如 "}} x {{"）同样通过。
func Check(text, identifier string, syntax Syntax) error {
	for i, line := range strings.Split(text, "\n") {
		opens := strings.Count(line, syntax.Open)
		closes := strings.Count(line, syntax.Close)
		if opens == closes {
			continue
		}

		delim := syntax.Open
		if closes > opens {
			delim = syntax.Close
		}

		return &Error{Kind: KindSyntax, Identifier: identifier, Line: i + 1, Delim: delim}
	}

	return nil
}
