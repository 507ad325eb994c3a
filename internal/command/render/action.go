package render

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/command"
)

func action(_ context.Context, cmd *cli.Command) error {
	identifier, err := command.TemplateArg(cmd)
	if err != nil {
		return err
	}

	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := command.LoadData(cmd.String("data"), cmd.StringSlice("set"))
	if err != nil {
		return err
	}

	r, closer, err := command.NewRenderer(cfg, command.Stderr(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	// 失败已写入错误日志，这里只决定退出码
	out, err := r.RenderE(identifier, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", identifier, err)
	}

	return command.WriteOutput(cmd.String("output"), out, command.Stdout(cmd))
}
