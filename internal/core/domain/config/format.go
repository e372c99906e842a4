package configdomain

// Format identifies a supported configuration file format.
type Format string

const (
	// FormatDotenv is line-based KEY=VALUE text, the conventional dotenv style.
	FormatDotenv Format = "dotenv"
	// FormatJSON is a single flat JSON object with string values.
	FormatJSON Format = "json"
	// FormatTOML is a flat TOML table with string values.
	FormatTOML Format = "toml"
)

func (f Format) String() string {
	return string(f)
}
