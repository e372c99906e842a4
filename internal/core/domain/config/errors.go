package configdomain

import "fmt"

// FileNotFoundError reports a config path that does not exist on disk.
// It is raised before format detection, so a missing file always surfaces
// as "not found" rather than "unsupported".
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

// UnsupportedFormatError reports a config path whose extension (or name)
// does not map to any known format.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format for: %s", e.Path)
}

// ParseError reports a file that was recognized but whose contents are
// malformed for its format. It wraps the underlying parser error.
type ParseError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parse error in %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
