package configinfra

import (
	"os"

	"go.uber.org/zap"

	configdomain "github.com/confixhq/confix/internal/core/domain/config"
	configports "github.com/confixhq/confix/internal/core/ports/config"
)

// Merger loads an ordered sequence of config files and folds them into a
// single map. Later files override earlier ones on key collision. The first
// file that fails to load aborts the whole merge; no partial result is
// ever returned.
type Merger struct {
	loaders map[configdomain.Format]configports.Loader
	logger  *zap.Logger
}

// NewMerger builds a Merger with the three standard loaders registered.
func NewMerger(logger *zap.Logger) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Merger{
		loaders: make(map[configdomain.Format]configports.Loader),
		logger:  logger,
	}
	for _, l := range []configports.Loader{
		NewDotenvLoader(),
		NewJSONLoader(),
		NewTOMLLoader(),
	} {
		m.loaders[l.Format()] = l
	}
	return m
}

// Merge folds the given files, in the given order, into one map.
// An empty sequence yields an empty map.
func (m *Merger) Merge(paths []string) (configdomain.Map, error) {
	merged := make(configdomain.Map)
	for _, path := range paths {
		cfg, err := m.loadFile(path)
		if err != nil {
			return nil, err
		}
		m.logger.Debug("loaded config file",
			zap.String("path", path),
			zap.Int("keys", len(cfg)),
		)
		merged.Merge(cfg)
	}

	m.logger.Debug("merged configuration",
		zap.Int("files", len(paths)),
		zap.Int("keys", len(merged)),
	)
	return merged, nil
}

// loadFile resolves one path to a map. Existence is checked before format
// detection so a missing file reports "not found", not "unsupported".
func (m *Merger) loadFile(path string) (configdomain.Map, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &configdomain.FileNotFoundError{Path: path}
	}

	format, err := Detect(path)
	if err != nil {
		return nil, err
	}

	return m.loaders[format].Load(path)
}

var _ configports.Merger = (*Merger)(nil)
