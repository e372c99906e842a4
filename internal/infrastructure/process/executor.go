package processinfra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"

	configdomain "github.com/confixhq/confix/internal/core/domain/config"
	processdomain "github.com/confixhq/confix/internal/core/domain/process"
	processports "github.com/confixhq/confix/internal/core/ports/process"
)

// Executor runs a command as a child process with the merged configuration
// layered onto the inherited environment. Standard streams are wired
// straight through to the parent's; nothing is captured or buffered here.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// NewExecutor creates an Executor wired to the parent's standard streams.
func NewExecutor(logger *zap.Logger) *Executor {
	return NewExecutorWithIO(os.Stdin, os.Stdout, os.Stderr, logger)
}

// NewExecutorWithIO creates an Executor with custom streams for the child.
func NewExecutorWithIO(stdin io.Reader, stdout, stderr io.Writer, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Run spawns the command and blocks until it terminates. The returned int
// is the child's exit code; errors are reserved for spawn/wait failures.
// A child terminated by a signal has no exit code and is normalized to 0.
func (e *Executor) Run(ctx context.Context, cmd processdomain.Command) (int, error) {
	if cmd.Executable() == "" {
		return 0, &processdomain.CommandError{Message: "no command provided"}
	}

	execCmd := exec.CommandContext(ctx, cmd.Executable(), cmd.Args()...)
	execCmd.Env = buildEnvironment(cmd.Env())
	execCmd.Stdin = e.stdin
	execCmd.Stdout = e.stdout
	execCmd.Stderr = e.stderr

	e.logger.Debug("spawning command",
		zap.String("executable", cmd.Executable()),
		zap.Strings("args", cmd.Args()),
		zap.Int("injected_keys", len(cmd.Env())),
	)

	if err := execCmd.Start(); err != nil {
		return 0, &processdomain.CommandError{
			Message: fmt.Sprintf("failed to spawn command %q", cmd.Executable()),
			Err:     err,
		}
	}

	err := execCmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				// Terminated by a signal: no exit code exists, report success.
				return 0, nil
			}
			return code, nil
		}
		return 0, &processdomain.CommandError{
			Message: fmt.Sprintf("command %q failed to run", cmd.Executable()),
			Err:     err,
		}
	}
	return 0, nil
}

// buildEnvironment copies the parent's environment and appends the merged
// config on top. Appended entries win over inherited ones of the same name.
func buildEnvironment(cfg configdomain.Map) []string {
	env := append([]string(nil), os.Environ()...)
	for key, value := range cfg {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}
	return env
}

var _ processports.Runner = (*Executor)(nil)
