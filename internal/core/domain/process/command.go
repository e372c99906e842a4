package processdomain

import (
	configdomain "github.com/confixhq/confix/internal/core/domain/config"
)

// Command is a validated command vector plus the configuration to inject
// into the child's environment. Element 0 of the vector is the executable,
// the rest are its arguments.
type Command struct {
	executable string
	args       []string
	env        configdomain.Map
}

// NewCommand builds a Command from an argv-style vector. An empty vector is
// a caller error and fails with CommandError before anything touches the OS.
func NewCommand(argv []string, env configdomain.Map) (Command, error) {
	if len(argv) == 0 {
		return Command{}, &CommandError{Message: "no command provided"}
	}
	if env == nil {
		env = make(configdomain.Map)
	}
	return Command{
		executable: argv[0],
		args:       argv[1:],
		env:        env,
	}, nil
}

// Executable returns the executable name or path.
func (c Command) Executable() string {
	return c.executable
}

// Args returns the arguments passed after the executable.
func (c Command) Args() []string {
	return c.args
}

// Env returns the configuration layered onto the child's environment.
func (c Command) Env() configdomain.Map {
	return c.env
}
