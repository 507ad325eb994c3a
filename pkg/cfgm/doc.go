// Package cfgm 提供分层配置加载。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置，命中首个文件即停止
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 设置，仅用户显式指定的 flag 生效
//
// # 快速开始
//
//	type Config struct {
//	    Syntax   []string `json:"syntax"    desc:"占位符定界符"`
//	    BasePath string   `json:"base-path" desc:"组件根目录"`
//	}
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "mizui",
//	    cfgm.WithEnvPrefix("MIZUI_"),
//	)
//
// # 环境变量与 CLI flag 映射
//
// 环境变量为前缀 + 大写 key，"." 与 "-" 转为 "_"：
//   - base-path → MIZUI_BASE_PATH
//   - log.level → MIZUI_LOG_LEVEL
//
// CLI flag 仅把 "." 替换为 "-"：
//   - base-path → --base-path
//   - log.level → --log-level
//
// 切片类型的环境变量以 "," 分隔，例如 MIZUI_SYNTAX="<%,%>"。
//
// # 模板展开
//
// 配置文件在解析前经过 templexp 的 Shell 参数展开（YAML/JSON 均支持），
// 使用 [WithoutTemplateExpansion] 可禁用：
//
//	# .mizui.yaml
//	base-path: ${MIZUI_HOME:-.}/components
//	error-log: ${MIZUI_LOGS:?MIZUI_LOGS is required}/error.log
//
// # 必需的配置文件
//
// [WithConfigPaths] 是搜索列表，缺失的文件会被跳过；
// [WithRequiredConfig] 指定的文件不存在时 [Load] 返回错误，适合 --config。
package cfgm
