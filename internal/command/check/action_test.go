package check_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-mizui/internal/command/check"
)

func runCheck(t *testing.T, dir, template string) (string, error) {
	t.Helper()
	cmd := check.NewCommand()
	var stdout bytes.Buffer
	cmd.Writer = &stdout
	cmd.ErrWriter = &bytes.Buffer{}

	err := cmd.Run(context.Background(), []string{
		"check",
		"--config", filepath.Join(dir, "config.yaml"),
		"--base-path", filepath.Join(dir, "components"),
		"--crash-log", "",
		filepath.Join(dir, template),
	})

	return stdout.String(), err
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "components"), 0o755))
	files := map[string]string{
		"config.yaml":          "{}\n",
		"ok.mizui":             "Hi {{ name }} {{ component(nav) }}",
		"bad.mizui":            "line one\nHi {{ name",
		"components/nav.mizui": "[{{ menu.title }}]",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	out, err := runCheck(t, dir, "ok.mizui")
	require.NoError(t, err)
	assert.Contains(t, out, "ok.mizui: ok")

	_, err = runCheck(t, dir, "bad.mizui")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.mizui:2:")
	assert.Contains(t, err.Error(), "syntax error")

	_, err = os.Stat(filepath.Join(dir, "error.log"))
	assert.True(t, os.IsNotExist(err))
}
