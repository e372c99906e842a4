package processdomain

import "fmt"

// CommandError reports that a command could not be executed: no command was
// supplied, the child failed to spawn, or waiting on it failed. The child
// exiting nonzero is not a CommandError; see ExitCodeError.
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command execution failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("command execution failed: %s", e.Message)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCodeError carries a child's nonzero exit code up to main so the tool
// can terminate with the same code. It is not a failure of the tool itself.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}
