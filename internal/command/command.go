// Package command 提供 render、check、watch 子命令的公共部分。
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/config"
	"github.com/lwmacct/251207-go-pkg-mizui/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-mizui/pkg/mizui"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// ConfigFlags 返回各子命令共享的配置 flags，每次调用生成新的实例。
func ConfigFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "配置文件路径（默认搜索 .mizui.yaml 等）",
		},
		&cli.StringSliceFlag{
			Name:  "syntax",
			Value: Defaults.Syntax,
			Usage: "占位符定界符，依次给出 open 与 close",
		},
		&cli.StringFlag{
			Name:    "base-path",
			Aliases: []string{"b"},
			Value:   Defaults.BasePath,
			Usage:   "组件根目录",
		},
		&cli.StringFlag{
			Name:  "error-log",
			Value: Defaults.ErrorLog,
			Usage: "错误日志文件，空表示只输出到 stderr",
		},
		&cli.StringFlag{
			Name:  "crash-log",
			Value: Defaults.CrashLog,
			Usage: "崩溃记录文件，空表示不记录",
		},
		&cli.IntFlag{
			Name:  "cache-size",
			Value: Defaults.CacheSize,
			Usage: "缓存条目上限，0 表示永不淘汰",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.LogLevel,
			Usage: "日志级别 debug|info|warn|error",
		},
	}
}

// LoadConfig 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), config.AppName,
		cfgm.WithRequiredConfig(cmd.String("config")),
		cfgm.WithEnvPrefix(config.EnvPrefix),
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// NewRenderer 按配置创建 Renderer，返回的 io.Closer 关闭错误日志文件。
func NewRenderer(cfg *config.Config, stream io.Writer) (*mizui.Renderer, io.Closer, error) {
	syntax, err := cfg.MizuiSyntax()
	if err != nil {
		return nil, nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}

	logger, closer, err := mizui.OpenErrorLog(cfg.ErrorLog, stream, level)
	if err != nil {
		return nil, nil, err
	}

	opts := []mizui.Option{
		mizui.WithSyntax(syntax),
		mizui.WithBasePath(cfg.BasePath),
		mizui.WithLogger(logger),
	}
	if cfg.CrashLog != "" {
		opts = append(opts, mizui.WithCrashRecorder(mizui.NewFileCrashLog(cfg.CrashLog)))
	}
	if cfg.CacheSize > 0 {
		cache, err := mizui.NewLRUCache(cfg.CacheSize)
		if err != nil {
			_ = closer.Close()
			return nil, nil, err
		}
		opts = append(opts, mizui.WithCache(cache))
	}

	return mizui.New(opts...), closer, nil
}

// TemplateArg 返回唯一的位置参数。
func TemplateArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one template path, got %d", cmd.Args().Len())
	}

	return cmd.Args().First(), nil
}

// Stdout 返回根命令的输出流。
func Stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

// Stderr 返回根命令的错误输出流。
func Stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}

	return os.Stderr
}
