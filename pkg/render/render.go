package render

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// 输出路径推导所识别的文件名标记。
const (
	markerDash = "-template"
	markerDot  = ".template"
)

// DeriveOutputPath 根据模板路径推导输出路径。
//
// 文件名含 "-template" 时移除其首次出现；否则含 ".template" 时
// 移除其首次出现；两者都不含时返回原路径（原地覆盖是允许的）。
// 标记出现多次时只移除第一处。
func DeriveOutputPath(templatePath string) string {
	if strings.Contains(templatePath, markerDash) {
		return strings.Replace(templatePath, markerDash, "", 1)
	}
	if strings.Contains(templatePath, markerDot) {
		return strings.Replace(templatePath, markerDot, "", 1)
	}

	return templatePath
}

// Renderer 将模板文件渲染为最终配置产物。
type Renderer struct {
	table Table
}

// New 基于给定解析表构造 Renderer。
func New(table Table) *Renderer {
	return &Renderer{table: table}
}

// RenderFile 读取模板、替换占位符并写入输出文件。
//
// outputPath 为空时按 [DeriveOutputPath] 推导。
// 缺失变量逐个告警后继续，占位符原样保留在产物中；
// 模板不可读或输出不可写为致命错误。
// 写入为一次性全量覆盖，不追加。
//
// 返回最终使用的输出路径。
func (r *Renderer) RenderFile(templatePath, outputPath string) (string, error) {
	content, err := os.ReadFile(templatePath) //nolint:gosec // path is provided by the invoker
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", templatePath, err)
	}

	rendered, missing := r.table.Substitute(string(content))
	for _, name := range missing {
		slog.Warn("Variable not found, leaving placeholder as-is", "name", name)
	}

	if outputPath == "" {
		outputPath = DeriveOutputPath(templatePath)
	}

	if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil { //nolint:gosec // rendered config is not a secret
		return "", fmt.Errorf("write output %s: %w", outputPath, err)
	}

	return outputPath, nil
}
