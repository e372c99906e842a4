package configinfra

import (
	"encoding/json"
	"os"

	configdomain "github.com/confixhq/confix/internal/core/domain/config"
	configports "github.com/confixhq/confix/internal/core/ports/config"
)

// JSONLoader parses a single flat JSON object with string values.
// A non-object top level or any non-string value is a parse error.
type JSONLoader struct{}

func NewJSONLoader() *JSONLoader { return &JSONLoader{} }

func (l *JSONLoader) Format() configdomain.Format { return configdomain.FormatJSON }

func (l *JSONLoader) Load(path string) (configdomain.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &configdomain.ParseError{Format: l.Format(), Path: path, Err: err}
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, &configdomain.ParseError{Format: l.Format(), Path: path, Err: err}
	}
	return configdomain.Map(values), nil
}

var _ configports.Loader = (*JSONLoader)(nil)
