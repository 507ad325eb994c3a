// Package render 提供模板渲染命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/command"
)

// Command 渲染命令
var Command = NewCommand()

// NewCommand 创建渲染命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "渲染模板并输出结果",
		ArgsUsage: "<template>",
		Action:    action,
		Flags: append(command.ConfigFlags(),
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "数据对象文件 (YAML/JSON)",
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
