package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand(" i3:workspace prev ")
	require.NoError(t, err)
	assert.Equal(t, Command{Type: TypeI3, Argument: "workspace prev"}, cmd)

	// only the first colon separates the type
	cmd, err = ParseCommand("command:notify-send 'a:b'")
	require.NoError(t, err)
	assert.Equal(t, Command{Type: TypeShell, Argument: "notify-send 'a:b'"}, cmd)
	assert.Equal(t, "command:notify-send 'a:b'", cmd.String())
}

func TestParseCommand_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing separator", "workspace prev", "expected <type>:<argument>"},
		{"unknown type", "sway:workspace prev", "unknown type"},
		{"empty argument", "command:   ", "empty argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
