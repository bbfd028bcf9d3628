package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables read as settings
	EnvPrefix = "GRAFTREE_"
	// RCFile is the name of the global and local JSON config file
	RCFile = ".graftreerc"
)

// LoadOptions locate the config files. Empty fields fall back to the
// user's environment.
type LoadOptions struct {
	// SourceDir holds the local config file
	SourceDir string
	// HomeDir holds the global RC file
	HomeDir string
	// ConfigHome replaces $XDG_CONFIG_HOME
	ConfigHome string
	Overrides  Overrides
}

// Layer is a config file considered during loading
type Layer struct {
	Path   string
	Scope  string
	Loaded bool
	// Err is set when the file exists but could not be parsed
	Err error
}

// Result is the outcome of Load
type Result struct {
	Settings *Settings
	Layers   []Layer
}

// FilePaths lists the config files Load considers, lowest precedence first
func FilePaths(opts LoadOptions) []Layer {
	configHome := opts.ConfigHome
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	home := opts.HomeDir
	if home == "" {
		home = xdg.Home
	}

	layers := []Layer{
		{Path: filepath.Join(configHome, "graftree", "config.toml"), Scope: "global"},
		{Path: filepath.Join(home, RCFile), Scope: "global"},
	}
	if opts.SourceDir != "" {
		layers = append(layers, Layer{Path: filepath.Join(opts.SourceDir, RCFile), Scope: "local"})
	}
	return layers
}

// Load resolves the settings for a run
func Load(opts LoadOptions) (*Result, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Global and local files
	layers := FilePaths(opts)
	for i := range layers {
		layer := &layers[i]
		if _, err := os.Stat(layer.Path); err != nil {
			continue
		}

		tempK := koanf.New(".")
		if err := tempK.Load(file.Provider(layer.Path), parserFor(layer.Path)); err != nil {
			layer.Err = errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", layer.Path)
			logger.Warn().Err(err).Str("file", layer.Path).Msg("Ignoring config file that does not parse")
			continue
		}
		if err := k.Merge(tempK); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge %s", layer.Path)
		}
		layer.Loaded = true
		logger.Debug().Str("file", layer.Path).Str("scope", layer.Scope).Msg("Loaded config file")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Command-line scalars
	if scalars := opts.Overrides.scalars(); len(scalars) > 0 {
		if err := k.Load(confmap.Provider(scalars, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply command-line overrides")
		}
	}

	// 5. Unmarshal
	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to decode settings")
	}

	// 6. Command-line lists extend the resolved ones
	opts.Overrides.appendLists(&settings)
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("mode", string(settings.Mode)).
		Strs("include", settings.Include).
		Strs("exclude", settings.Exclude).
		Int("jobs", settings.Jobs).
		Msg("Resolved settings")

	return &Result{Settings: &settings, Layers: layers}, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser()
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return json.Parser()
	}
}
