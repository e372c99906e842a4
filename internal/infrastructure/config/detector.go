package configinfra

import (
	"path/filepath"
	"strings"

	configdomain "github.com/confixhq/confix/internal/core/domain/config"
)

// Detect maps a file path to its config format by extension. A file named
// exactly ".env" counts as dotenv even though it has no conventional
// extension. Detection is purely lexical; existence is checked by the caller.
func Detect(path string) (configdomain.Format, error) {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "env":
		return configdomain.FormatDotenv, nil
	case "json":
		return configdomain.FormatJSON, nil
	case "toml":
		return configdomain.FormatTOML, nil
	}

	if filepath.Base(path) == ".env" {
		return configdomain.FormatDotenv, nil
	}

	return "", &configdomain.UnsupportedFormatError{Path: path}
}
