// Package templexp 提供配置文件的 Shell 参数展开。
//
// 只处理 ${...}，在 YAML/JSON 解析之前对原文做字符串替换，
// 例如让组件根目录随部署环境变化：
//
//	base-path: ${MIZUI_HOME:-.}/components
//
// # 语义
//
//  1. 不解析 $VAR，只识别 ${VAR...}
//  2. "$$" 输出字面量 "$"，表达式内的 word 可以继续嵌套 ${...}
//  3. ":=" 与 "=" 的赋值只写入本次展开的变量快照
//  4. 无法识别的表达式原样保留
//
// 参考 Bash 参数展开：https://www.gnu.org/software/bash/manual/bash.html#Shell-Parameter-Expansion
package templexp
