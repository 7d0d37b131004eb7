// Package render 提供配置模板的占位符替换。
//
// 模板中形如 ${{NAME}} 的占位符会被解析表 (Table) 中的同名值替换。
// 不执行命令、不引入模板引擎，只做一次性的扁平替换，
// 强调可读性与可预测性。
//
// # 语法说明
//
//  1. 定界符为 ${{ 与 }}，内部不允许空白
//  2. 标识符限定为 [A-Z_][A-Z0-9_]*（大写字母、数字、下划线，不以数字开头）
//  3. 小写或格式错误的表达式保持原样，不视为错误
//  4. 替换为单遍扫描，替换结果不会被再次扫描（无递归展开）
//  5. 未解析的占位符原样保留，并逐次告警
//
// # 解析表
//
// Table 在调用开始时由宿主环境变量快照构建（见 [EnvironTable]），
// 随后可通过补充变量文件扩展（见 [Table.LoadDefaults]）；
// 已存在的条目永远不会被文件覆盖。展开过程不回写进程环境。
//
// # 快速开始
//
// 渲染模板文件：
//
//	table := render.EnvironTable()
//	if err := table.LoadDefaults(".env"); err != nil { ... }
//	out, err := render.New(table).RenderFile("nginx-values-template.conf", "")
//
// 输出路径未指定时按文件名推导，详见 [DeriveOutputPath]。
package render
