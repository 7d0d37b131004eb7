// Package envfile 提供补充变量文件 (.env) 的解析。
//
// 文件格式为逐行的 KEY=VALUE 对：
//   - 空行与 # 开头的注释行被忽略
//   - 仅首个 "=" 作为分隔符，其余内容（含后续 "="）原样归入 value
//   - 同一 key 多次出现时，文件内后出现者生效
//
// 该包只做解析，不修改进程环境变量；合并优先级由调用方
// （见 render.Table）决定。
//
// # 快速开始
//
// 解析 .env 文件：
//
//	vars, err := envfile.ParseFile(".env")
//
// 与 godotenv 等库不同，value 不做引号剥离与 $VAR 展开，
// 读到什么就是什么。
package envfile
