package mizui

import "os"

// FileSystem 模板读取的外部依赖。
type FileSystem interface {
	Exists(path string) bool
	ReadText(path string) (string, error)
}

// OSFileSystem 基于本地文件系统的 [FileSystem]。
type OSFileSystem struct{}

// Exists 报告 path 是否存在且为普通文件。
func (OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// ReadText 读取 path 的完整内容。
func (OSFileSystem) ReadText(path string) (string, error) {
	b, err := os.ReadFile(path) //nolint:gosec // template path comes from the caller
	if err != nil {
		return "", err
	}

	return string(b), nil
}
