// Package watch 提供监听文件变化并重新渲染的命令。
package watch

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/command"
)

// Command 监听命令
var Command = NewCommand()

// NewCommand 创建监听命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "模板或组件变化时重新渲染",
		ArgsUsage: "<template>",
		Action:    action,
		Flags: append(command.ConfigFlags(),
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "数据对象文件 (YAML/JSON)，变化时同样触发渲染",
			},
			&cli.StringSliceFlag{
				Name:    "set",
				Aliases: []string{"s"},
				Usage:   "覆盖数据对象中的值，如 --set user.name=Ada",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出文件，默认写到 stdout",
			},
		),
	}
}
