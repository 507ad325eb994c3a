package command_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/command"
)

func TestLoadData(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "data.yaml")
	jsonPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(yamlPath, []byte("user:\n  name: Ada\n  age: 36\n"), 0o600))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"title": "Home", "user": {"name": "Bo"}}`), 0o600))

	tests := []struct {
		name string
		path string
		sets []string
		want map[string]any
	}{
		{
			name: "empty",
			want: map[string]any{},
		},
		{
			name: "yaml file",
			path: yamlPath,
			want: map[string]any{"user": map[string]any{"name": "Ada", "age": 36}},
		},
		{
			name: "json file with override",
			path: jsonPath,
			sets: []string{"user.name=Lin", "footer.year=2024"},
			want: map[string]any{
				"title":  "Home",
				"user":   map[string]any{"name": "Lin"},
				"footer": map[string]any{"year": "2024"},
			},
		},
		{
			name: "value keeps equals sign",
			sets: []string{"expr=a=b"},
			want: map[string]any{"expr": "a=b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.LoadData(tt.path, tt.sets)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadData_Errors(t *testing.T) {
	_, err := command.LoadData("", []string{"novalue"})
	assert.ErrorContains(t, err, "want key=value")

	_, err = command.LoadData(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorContains(t, err, "read data file")
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, command.WriteOutput("", "hello", &buf))
	assert.Equal(t, "hello", buf.String())

	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, command.WriteOutput(path, "first", nil))
	require.NoError(t, command.WriteOutput(path, "second", nil))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}
