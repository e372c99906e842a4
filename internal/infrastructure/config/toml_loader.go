package configinfra

import (
	"github.com/BurntSushi/toml"

	configdomain "github.com/confixhq/confix/internal/core/domain/config"
	configports "github.com/confixhq/confix/internal/core/ports/config"
)

// TOMLLoader parses a flat TOML table with string values. Decoding into a
// string-valued map makes any non-string value a type error from the
// decoder, matching the JSON loader's contract.
type TOMLLoader struct{}

func NewTOMLLoader() *TOMLLoader { return &TOMLLoader{} }

func (l *TOMLLoader) Format() configdomain.Format { return configdomain.FormatTOML }

func (l *TOMLLoader) Load(path string) (configdomain.Map, error) {
	values := make(map[string]string)
	if _, err := toml.DecodeFile(path, &values); err != nil {
		return nil, &configdomain.ParseError{Format: l.Format(), Path: path, Err: err}
	}
	return configdomain.Map(values), nil
}

var _ configports.Loader = (*TOMLLoader)(nil)
