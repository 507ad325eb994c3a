package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/command/check"
	"github.com/lwmacct/251207-go-pkg-mizui/internal/command/render"
	"github.com/lwmacct/251207-go-pkg-mizui/internal/command/watch"
	"github.com/lwmacct/251207-go-pkg-mizui/internal/config"
)

// version 由 -ldflags "-X main.version=..." 注入
var version = "dev"

func main() {
	app := &cli.Command{
		Name:    config.AppName,
		Usage:   "基于文件的字符串模板渲染工具",
		Version: version,
		Commands: []*cli.Command{
			render.Command,
			check.Command,
			watch.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
