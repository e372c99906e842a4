package processdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configdomain "github.com/confixhq/confix/internal/core/domain/config"
)

func TestNewCommand_SplitsExecutableAndArgs(t *testing.T) {
	cmd, err := NewCommand([]string{"sh", "-c", "echo hi"}, configdomain.Map{"KEY": "value"})
	require.NoError(t, err)

	assert.Equal(t, "sh", cmd.Executable())
	assert.Equal(t, []string{"-c", "echo hi"}, cmd.Args())
	assert.Equal(t, configdomain.Map{"KEY": "value"}, cmd.Env())
}

func TestNewCommand_EmptyVector(t *testing.T) {
	_, err := NewCommand(nil, nil)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Error(), "no command provided")
}

func TestNewCommand_NilEnv(t *testing.T) {
	cmd, err := NewCommand([]string{"env"}, nil)
	require.NoError(t, err)

	assert.NotNil(t, cmd.Env())
	assert.Empty(t, cmd.Env())
}

func TestExitCodeError_Message(t *testing.T) {
	err := &ExitCodeError{Code: 7}
	assert.Equal(t, "command exited with code 7", err.Error())
}
