package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/command"
	"github.com/lwmacct/251207-go-pkg-mizui/pkg/mizui"
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
	// check 不写错误日志文件
	cfg.ErrorLog = ""

	r, closer, err := command.NewRenderer(cfg, command.Stderr(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	tpl, err := r.Prepare(identifier)
	if err != nil {
		var e *mizui.Error
		if errors.As(err, &e) && e.Kind == mizui.KindSyntax {
			return fmt.Errorf("%s:%d: %w", identifier, e.Line, err)
		}
		return fmt.Errorf("%s: %w", identifier, err)
	}

	_, err = fmt.Fprintf(command.Stdout(cmd), "%s: ok (%d bytes compiled)\n", identifier, len(tpl.Source()))

	return err
}
