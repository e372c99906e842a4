package configinfra

import (
	"github.com/joho/godotenv"

	configdomain "github.com/confixhq/confix/internal/core/domain/config"
	configports "github.com/confixhq/confix/internal/core/ports/config"
)

// DotenvLoader parses line-based KEY=VALUE files. godotenv.Read parses
// without touching the calling process's environment.
type DotenvLoader struct{}

func NewDotenvLoader() *DotenvLoader { return &DotenvLoader{} }

func (l *DotenvLoader) Format() configdomain.Format { return configdomain.FormatDotenv }

func (l *DotenvLoader) Load(path string) (configdomain.Map, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, &configdomain.ParseError{Format: l.Format(), Path: path, Err: err}
	}
	return configdomain.Map(values), nil
}

var _ configports.Loader = (*DotenvLoader)(nil)
