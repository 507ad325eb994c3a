// Package check 提供模板校验命令。
package check

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/command"
)

// Command 校验命令
var Command = NewCommand()

// NewCommand 创建校验命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "展开组件并校验、编译模板，不执行渲染",
		ArgsUsage: "<template>",
		Action:    action,
		Flags:     command.ConfigFlags(),
	}
}
