package cfgm

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-mizui/pkg/templexp"
)

// DefaultPaths 返回默认配置文件的搜索顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths(appName ...string) []string {
	var paths []string

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		paths = append(paths, "."+name+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	return append(paths, "config.yaml", "config/config.yaml")
}

// Load 读取配置并按优先级合并，见包文档。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	paths := o.configPaths
	switch {
	case o.requiredConfig != "":
		paths = []string{o.requiredConfig}
	case len(paths) == 0:
		paths = DefaultPaths(o.appName)
	}

	configMap := structToMap(defaultConfig)

	path, fileMap, err := readFirstConfig(paths, !o.noTemplateExpansion)
	if err != nil {
		return nil, err
	}
	if fileMap == nil && o.requiredConfig != "" {
		return nil, fmt.Errorf("config file %s: %w", o.requiredConfig, fs.ErrNotExist)
	}
	if fileMap != nil {
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noTemplateExpansion)
	} else {
		slog.Debug("No config file found, using defaults")
	}

	keys := collectKeys(reflect.TypeOf(defaultConfig), "")

	if o.envPrefix != "" {
		for _, k := range keys {
			envKey := o.envPrefix + envName(k.path)
			if val, ok := os.LookupEnv(envKey); ok && val != "" {
				setByPath(configMap, k.path, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", k.path)
			}
		}
	}

	if o.cmd != nil {
		for _, k := range keys {
			flag := strings.ReplaceAll(k.path, ".", "-")
			if !o.cmd.IsSet(flag) {
				continue
			}
			if val, ok := flagValue(o.cmd, flag, k.typ); ok {
				setByPath(configMap, k.path, val)
			}
		}
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，注入 [WithCommand]，appName 非空时额外注入 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	base := []Option{WithCommand(cmd)}
	if appName != "" {
		base = append(base, WithAppName(appName))
	}

	return Load(defaultConfig, append(base, opts...)...)
}

// readFirstConfig 返回第一个存在的配置文件内容；都不存在时 fileMap 为 nil。
//
// expand 为 true 时先对原文做 ${...} 展开再解析。
func readFirstConfig(paths []string, expand bool) (string, map[string]any, error) {
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", nil, fmt.Errorf("read config file %s: %w", path, err)
		}

		if expand {
			expanded, err := templexp.ExpandTemplate(string(content))
			if err != nil {
				return "", nil, fmt.Errorf("expand template in %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return "", nil, fmt.Errorf("parse config file %s: %w", path, err)
		}

		return path, fileMap, nil
	}

	return "", nil, nil
}

// envName 将 key 转为环境变量名：client.rev-auth → CLIENT_REV_AUTH。
func envName(key string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// flagValue 按字段类型读取 CLI flag 的值。
func flagValue(cmd *cli.Command, flag string, typ reflect.Type) (any, bool) {
	if typ == reflect.TypeFor[time.Duration]() {
		return cmd.Duration(flag), true
	}

	switch typ.Kind() {
	case reflect.String:
		return cmd.String(flag), true
	case reflect.Bool:
		return cmd.Bool(flag), true
	case reflect.Int:
		return cmd.Int(flag), true
	case reflect.Int64:
		return cmd.Int64(flag), true
	case reflect.Uint:
		return cmd.Uint(flag), true
	case reflect.Float64:
		return cmd.Float64(flag), true
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			return cmd.StringSlice(flag), true
		}
	}

	return nil, false
}
