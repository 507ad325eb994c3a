// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 或 .mizui.yaml 等默认路径
//  3. 环境变量 - MIZUI_ 前缀
//  4. CLI flags
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lwmacct/251207-go-pkg-mizui/pkg/mizui"
)

// AppName 应用名称，用于默认配置路径。
const AppName = "mizui"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "MIZUI_"

// Config 应用配置。
type Config struct {
	Syntax    []string `json:"syntax" desc:"占位符定界符 [open, close]"`
	BasePath  string   `json:"base-path" desc:"组件根目录"`
	ErrorLog  string   `json:"error-log" desc:"错误日志文件，空表示只输出到 stderr"`
	CrashLog  string   `json:"crash-log" desc:"崩溃记录文件 (JSON Lines)，空表示不记录"`
	CacheSize int      `json:"cache-size" desc:"缓存条目上限，0 表示永不淘汰"`
	LogLevel  string   `json:"log-level" desc:"日志级别 debug|info|warn|error"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Syntax:   []string{mizui.DefaultSyntax.Open, mizui.DefaultSyntax.Close},
		BasePath: "components",
		ErrorLog: "error.log",
		CrashLog: "crash.log",
		LogLevel: "info",
	}
}

// Validate 校验配置。
func (c Config) Validate() error {
	if _, err := c.MizuiSyntax(); err != nil {
		return err
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache-size must not be negative, got %d", c.CacheSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// MizuiSyntax 返回定界符配置。
func (c Config) MizuiSyntax() (mizui.Syntax, error) {
	return mizui.SyntaxFromPair(c.Syntax)
}

// Level 解析日志级别。
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log-level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
