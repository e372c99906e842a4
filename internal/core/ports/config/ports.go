package configports

import (
	configdomain "github.com/confixhq/confix/internal/core/domain/config"
)

// Loader parses one file of a single format into a flat key/value map.
// A failed parse returns no keys at all, never a partial map.
type Loader interface {
	Format() configdomain.Format
	Load(path string) (configdomain.Map, error)
}

// Merger resolves and folds an ordered sequence of config files into one
// map, later files overriding earlier ones on key collision.
type Merger interface {
	Merge(paths []string) (configdomain.Map, error)
}
