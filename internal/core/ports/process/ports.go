package processports

import (
	"context"

	processdomain "github.com/confixhq/confix/internal/core/domain/process"
)

// Runner spawns a command with its configured environment, blocks until the
// child terminates, and returns the child's exit code. A child that exits
// nonzero is a successful run; the error return is reserved for failures of
// the runner itself (empty command, spawn failure, wait failure).
type Runner interface {
	Run(ctx context.Context, cmd processdomain.Command) (int, error)
}
