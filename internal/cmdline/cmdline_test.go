package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		command  string
		expected map[string]string
	}{
		{"blank", "   ", "", map[string]string{}},
		{"name only", "status", "status", map[string]string{}},
		{"key value", "echo msg=hi", "echo", map[string]string{"msg": "hi"}},
		{"quoted value", `echo msg="hello world"`, "echo", map[string]string{"msg": "hello world"}},
		{"single quotes", `echo 'msg=it is'`, "echo", map[string]string{"msg": "it is"}},
		{"long with equals", "repeat --count=2 --msg=hi", "repeat", map[string]string{"count": "2", "msg": "hi"}},
		{"long with space", "repeat --count 2 --msg hi", "repeat", map[string]string{"count": "2", "msg": "hi"}},
		{"bare flag", "help --verbose", "help", map[string]string{"verbose": "true"}},
		{"flag before option", "help --verbose name=echo", "help", map[string]string{"verbose": "true", "name": "echo"}},
		{"later wins", "echo msg=a msg=b", "echo", map[string]string{"msg": "b"}},
		{"empty value", "echo msg=", "echo", map[string]string{"msg": ""}},
		{"value with equals", "set expr=a=b", "set", map[string]string{"expr": "a=b"}},
		{"comment", "echo msg=hi # trailing", "echo", map[string]string{"msg": "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, options, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.command, name)
			assert.Equal(t, tt.expected, options)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"positional", "echo hi"},
		{"missing key", "echo =hi"},
		{"bare dashes", "echo --"},
		{"dashes equals", "echo --=x"},
		{"unterminated quote", `echo msg="hi`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.line)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput), "got %v", err)
		})
	}
}

func TestParseArgs(t *testing.T) {
	options, err := ParseArgs([]string{"msg=hello world", "--count", "3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"msg": "hello world", "count": "3"}, options)
}

func TestParseArgsValuesWithEquals(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected map[string]string
	}{
		{"separate word is its own option", []string{"--msg", "a=b"}, map[string]string{"msg": "true", "a": "b"}},
		{"long form keeps equals", []string{"--msg=a=b"}, map[string]string{"msg": "a=b"}},
		{"short form keeps equals", []string{"msg=a=b"}, map[string]string{"msg": "a=b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, err := ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, options)
		})
	}
}
