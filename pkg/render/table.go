package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/lwmacct/260831-go-pkg-envrender/pkg/envfile"
)

// Table 是占位符名称到值的解析表。
//
// 它是一次调用内的显式状态：由环境变量快照构建，按需扩展，
// 不回写进程环境。
type Table map[string]string

// EnvironTable 生成当前环境变量的快照。
//
// 该快照仅用于本次渲染，后续的 [Table.SetDefault] 只会写入这份数据。
func EnvironTable() Table {
	table := make(Table)
	for _, env := range os.Environ() {
		if key, value, found := strings.Cut(env, "="); found {
			table[key] = value
		}
	}

	return table
}

// Lookup 查询名称对应的值。
func (t Table) Lookup(name string) (string, bool) {
	val, ok := t[name]

	return val, ok
}

// SetDefault 仅在名称不存在时写入值。
//
// 已有条目（含空字符串值）保持不变。
func (t Table) SetDefault(name, value string) {
	if _, ok := t[name]; !ok {
		t[name] = value
	}
}

// LoadDefaults 读取补充变量文件并合并到解析表。
//
// 路径不存在时视为无操作；文件存在但不可读视为错误。
// 文件内的键只作为缺省值写入，已存在的条目始终优先。
func (t Table) LoadDefaults(path string) error {
	if path == "" {
		return nil
	}

	vars, err := envfile.ParseFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("load env file %s: %w", path, err)
	}

	for key, value := range vars {
		t.SetDefault(key, value)
	}

	return nil
}
