package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse 逐行解析 KEY=VALUE 内容。
//
// 每行先去除首尾空白；空行与 "#" 开头的行跳过；没有 "=" 的行同样跳过。
// 仅按首个 "=" 拆分，value 保留原文（含引号与后续 "="）。
// 同一 key 重复出现时后者覆盖前者。
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan env file: %w", err)
	}

	return vars, nil
}

// ParseFile 读取并解析指定路径的补充变量文件。
//
// 路径不存在时由调用方通过 os.IsNotExist 判断是否视为错误。
func ParseFile(path string) (map[string]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by the invoker
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}
