// Author: lwmacct (https://github.com/lwmacct)
package cfgm_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lwmacct/251207-go-pkg-mizui/pkg/cfgm"
)

// Example_defaultPaths 演示 DefaultPaths 的搜索顺序。
func Example_defaultPaths() {
	// 不指定应用名称时，返回基础路径
	paths := cfgm.DefaultPaths()
	fmt.Println("基础路径数量:", len(paths))

	// 指定应用名称时，会包含应用专属配置路径
	paths = cfgm.DefaultPaths("mizui")
	fmt.Println("带应用名路径数量:", len(paths))
	fmt.Println("首个路径:", paths[0])

	// Output:
	// 基础路径数量: 2
	// 带应用名路径数量: 5
	// 首个路径: .mizui.yaml
}

// Example_load 演示如何加载配置。
//
// Load 函数按以下优先级合并配置:
//  1. 默认值 (最低优先级)
//  2. 配置文件
//  3. 环境变量
//  4. CLI flags (最高优先级)
func Example_load() {
	type Config struct {
		Syntax   []string `json:"syntax"`
		BasePath string   `json:"base-path"`
	}

	dir, _ := os.MkdirTemp("", "cfgm-example")
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "config.yaml")
	_ = os.WriteFile(path, []byte("base-path: views/components\n"), 0o600)

	cfg, err := cfgm.Load(
		Config{Syntax: []string{"{{", "}}"}, BasePath: "components"},
		cfgm.WithConfigPaths(path),
	)
	if err != nil {
		fmt.Println("加载失败:", err)
		return
	}

	fmt.Println("syntax:", cfg.Syntax)
	fmt.Println("base-path:", cfg.BasePath)

	// Output:
	// syntax: [{{ }}]
	// base-path: views/components
}
