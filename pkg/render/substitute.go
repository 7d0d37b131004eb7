package render

import "strings"

func isNameStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

// scanPlaceholder 尝试自 start 处匹配一个完整的 ${{NAME}}。
//
// 返回名称与匹配结束位置（含结尾 }} 之后）。
// 名称必须满足 [A-Z_][A-Z0-9_]*，定界符内不允许其他字符。
func scanPlaceholder(text string, start int) (string, int, bool) {
	i := start + len("${{")
	if i >= len(text) || !isNameStart(text[i]) {
		return "", 0, false
	}

	j := i + 1
	for j < len(text) && isNameChar(text[j]) {
		j++
	}

	if !strings.HasPrefix(text[j:], "}}") {
		return "", 0, false
	}

	return text[i:j], j + len("}}"), true
}

// Substitute 对输入文本执行占位符替换。
//
// 自左向右单遍扫描所有不重叠的 ${{NAME}} 匹配：
//   - 名称在解析表中时，整个占位符（含定界符）替换为对应值，
//     替换结果不会被再次扫描
//   - 名称不存在时，占位符原样保留，名称按出现顺序追加到返回的
//     缺失列表（每次出现一条）
//
// 小写或格式错误的表达式不构成占位符，按字面文本输出。
// 给定同一解析表与文本，输出是确定的。
func (t Table) Substitute(text string) (string, []string) {
	var buf strings.Builder
	buf.Grow(len(text))

	var missing []string

	for i := 0; i < len(text); {
		if text[i] != '$' || !strings.HasPrefix(text[i:], "${{") {
			buf.WriteByte(text[i])
			i++

			continue
		}

		name, end, ok := scanPlaceholder(text, i)
		if !ok {
			buf.WriteByte(text[i])
			i++

			continue
		}

		if val, found := t[name]; found {
			buf.WriteString(val)
		} else {
			missing = append(missing, name)
			buf.WriteString(text[i:end])
		}

		i = end
	}

	return buf.String(), missing
}
