package templexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-mizui/pkg/templexp"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr string
	}{
		{name: "no dollar", text: "base-path: components", want: "base-path: components"},
		{name: "plain reference", text: "${HOME_DIR}/components", want: "/srv/site/components"},
		{name: "unset is empty", text: "x=${NOPE}", want: "x="},
		{name: "colon default treats empty as unset", text: "${EMPTY:-fallback}", want: "fallback"},
		{name: "default without colon keeps empty", text: "x=${EMPTY-fallback}", want: "x="},
		{name: "default on unset", text: "${NOPE-fallback}", want: "fallback"},
		{name: "alternate when set", text: "${HOME_DIR:+alt}", want: "alt"},
		{name: "alternate when empty", text: "[${EMPTY:+alt}]", want: "[]"},
		{name: "alternate without colon on empty", text: "[${EMPTY+alt}]", want: "[alt]"},
		{name: "nested default", text: "${NOPE:-${HOME_DIR}}/c", want: "/srv/site/c"},
		{name: "assignment", text: "${NEW:=v1}-${NEW}", want: "v1-v1"},
		{name: "literal dollar", text: "$$${HOME_DIR}", want: "$/srv/site"},
		{name: "bare dollar kept", text: "cost $5 $VAR $", want: "cost $5 $VAR $"},
		{name: "unknown expression kept", text: "{{ ${1abc} }}", want: "{{ ${1abc} }}"},
		{name: "unterminated kept", text: "${HOME_DIR", want: "${HOME_DIR"},
		{name: "required set", text: "${HOME_DIR:?need home}", want: "/srv/site"},
		{name: "required with message", text: "${NOPE:?need home}", wantErr: "NOPE: need home"},
		{name: "required without message", text: "${EMPTY:?}", wantErr: "parameter null or not set"},
		{name: "required without colon accepts empty", text: "[${EMPTY?}]", want: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := templexp.Vars{"HOME_DIR": "/srv/site", "EMPTY": ""}
			got, err := templexp.Expand(tt.text, vars)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_AssignmentStaysInSnapshot(t *testing.T) {
	vars := templexp.Vars{}
	_, err := templexp.Expand("${MIZUI_TEST_ASSIGN:=x}", vars)
	require.NoError(t, err)

	assert.Equal(t, "x", vars["MIZUI_TEST_ASSIGN"])
	_, ok := templexp.Environ()["MIZUI_TEST_ASSIGN"]
	assert.False(t, ok)
}

func TestExpandTemplate_Environment(t *testing.T) {
	t.Setenv("MIZUI_TEST_HOME", "/opt/mizui")

	got, err := templexp.ExpandTemplate("base-path: ${MIZUI_TEST_HOME:-.}/components")
	require.NoError(t, err)
	assert.Equal(t, "base-path: /opt/mizui/components", got)
}
