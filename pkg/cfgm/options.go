package cfgm

import "github.com/urfave/cli/v3"

// options 配置加载选项。
type options struct {
	appName     string // 应用名称，用于生成默认配置路径
	cmd         *cli.Command
	configPaths []string
	envPrefix   string

	requiredConfig      string // 显式指定的配置文件，必须存在
	noTemplateExpansion bool   // 禁用配置文件的 ${...} 展开（默认启用）
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 以覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径，按顺序查找，命中首个文件即停止。
//
// 空字符串会被忽略，便于直接传入可选的 --config 值。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		for _, p := range paths {
			if p != "" {
				o.configPaths = append(o.configPaths, p)
			}
		}
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// 示例 (前缀为 "MIZUI_")：
//   - MIZUI_BASE_PATH → base-path
//   - MIZUI_CACHE_SIZE → cache-size
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithRequiredConfig 指定唯一的配置文件，替代搜索路径；文件不存在时 [Load] 返回错误。
//
// 空字符串表示未指定，便于直接传入可选的 --config 值。
func WithRequiredConfig(path string) Option {
	return func(o *options) {
		o.requiredConfig = path
	}
}

// WithoutTemplateExpansion 禁用配置文件的模板展开。
//
// 默认会在解析前执行 Shell 参数展开（如 ${MIZUI_HOME:-.}），见 templexp 包。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}
