package command

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	yamlv3 "go.yaml.in/yaml/v3"
)

// LoadData 读取数据对象文件（YAML 或 JSON），再应用 key=value 覆盖。
//
// path 为空时从空对象开始；key 支持点分路径，如 user.name=Ada。
func LoadData(path string, sets []string) (map[string]any, error) {
	data := map[string]any{}

	if path != "" {
		content, err := os.ReadFile(path) //nolint:gosec // path is given by the operator
		if err != nil {
			return nil, fmt.Errorf("read data file: %w", err)
		}
		if strings.EqualFold(filepath.Ext(path), ".json") {
			err = json.Unmarshal(content, &data)
		} else {
			err = yamlv3.Unmarshal(content, &data)
		}
		if err != nil {
			return nil, fmt.Errorf("parse data file %s: %w", path, err)
		}
		if data == nil {
			data = map[string]any{}
		}
	}

	for _, set := range sets {
		key, value, ok := strings.Cut(set, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want key=value", set)
		}
		setPath(data, strings.Split(key, "."), value)
	}

	return data, nil
}

func setPath(dst map[string]any, parts []string, value any) {
	for _, part := range parts[:len(parts)-1] {
		next, ok := dst[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			dst[part] = next
		}
		dst = next
	}
	dst[parts[len(parts)-1]] = value
}

// WriteOutput 写出渲染结果；path 为空时写入 w，否则原子替换目标文件。
func WriteOutput(path, text string, w io.Writer) error {
	if path == "" {
		_, err := io.WriteString(w, text)
		return err
	}

	if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	return nil
}
