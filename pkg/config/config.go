// Package config loads seqmatch's layered configuration: embedded
// defaults, then the user's config file, then SEQMATCH_ environment
// variables, each layer overriding the one before it.
package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/seqmatch/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the fully merged configuration.
type Config struct {
	Engine  EngineConfig  `koanf:"engine"`
	Logging LoggingConfig `koanf:"logging"`
	Output  OutputConfig  `koanf:"output"`
}

// EngineConfig controls the matching engine.
type EngineConfig struct {
	// MaxDepth bounds the structural search's recursion.
	MaxDepth int `koanf:"max_depth"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	NoColor bool   `koanf:"no_color"`
	Format  string `koanf:"format"`
}

// rawBytesProvider implements koanf's provider interface for raw bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// DefaultPath returns the user config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "seqmatch", "seqmatch.toml")
}

// Load merges all configuration layers. path overrides the default user
// config location; an empty path falls back to DefaultPath, which may
// not exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path)
	}

	// SEQMATCH_ENGINE_MAX_DEPTH=500 becomes engine.max_depth. Section
	// names contain no underscores, so only the first one splits.
	err := k.Load(env.Provider("SEQMATCH_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "SEQMATCH_"))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Engine.MaxDepth <= 0 {
		return errors.Newf(errors.ErrConfigValid, "engine.max_depth must be positive, got %d", cfg.Engine.MaxDepth)
	}
	switch cfg.Output.Format {
	case "text", "json", "yaml":
	default:
		return errors.Newf(errors.ErrConfigValid, "output.format must be text, json or yaml, got %q", cfg.Output.Format)
	}
	return nil
}
