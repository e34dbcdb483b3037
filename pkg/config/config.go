package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/arthur-debert/unitool/pkg/logging"
	"github.com/arthur-debert/unitool/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "UNITOOL_"

// Color modes accepted by output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Unity configures discovery and invocation of the editor
type Unity struct {
	EditorsDir  string        `koanf:"editors_dir"`
	EditorPath  string        `koanf:"editor_path"`
	ResultsPath string        `koanf:"results_path"`
	Assemblies  string        `koanf:"assemblies"`
	Timeout     time.Duration `koanf:"timeout"`
	// ExtraArgs is a shell-quoted string appended to every editor command
	ExtraArgs string `koanf:"extra_args"`
}

// Report configures results parsing
type Report struct {
	VerifyCounts bool `koanf:"verify_counts"`
}

// Output configures terminal output
type Output struct {
	Color      string `koanf:"color"`
	StylesFile string `koanf:"styles_file"`
}

// Config is the effective configuration after all sources are merged
type Config struct {
	Unity  Unity  `koanf:"unity"`
	Report Report `koanf:"report"`
	Output Output `koanf:"output"`

	k *koanf.Koanf
}

// Options selects the optional sources of Load
type Options struct {
	// UserFile is the user config file. Empty means paths.ConfigFile().
	// A missing user file is not an error.
	UserFile string
	// ExplicitFile is a file named on the command line. It must exist.
	ExplicitFile string
}

// Load merges every configuration source and validates the result
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(defaultsProvider{}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config, if present
	userFile := opts.UserFile
	if userFile == "" {
		userFile = paths.ConfigFile()
	}
	if _, err := os.Stat(userFile); err == nil {
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userFile).
				WithDetail("file", userFile)
		}
		logger.Debug().Str("file", userFile).Msg("Loaded user config")
	}

	// 3. Explicit config
	if opts.ExplicitFile != "" {
		if _, err := os.Stat(opts.ExplicitFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", opts.ExplicitFile).
				WithDetail("file", opts.ExplicitFile)
		}
		if err := k.Load(file.Provider(opts.ExplicitFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.ExplicitFile).
				WithDetail("file", opts.ExplicitFile)
		}
		logger.Debug().Str("file", opts.ExplicitFile).Msg("Loaded explicit config")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.k = k

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps UNITOOL_UNITY__EDITOR_PATH to unity.editor_path.
// Variables without a section separator are not configuration keys.
func envKey(s string) string {
	key := strings.TrimPrefix(s, EnvPrefix)
	if !strings.Contains(key, "__") {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}

func (c *Config) validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigParse,
			"output.color must be one of auto, always, never; got %q", c.Output.Color).
			WithDetail("key", "output.color")
	}
	if c.Unity.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigParse, "unity.timeout must be positive; got %s", c.Unity.Timeout).
			WithDetail("key", "unity.timeout")
	}
	return nil
}

// ToTOML renders the merged configuration as TOML
func (c *Config) ToTOML() ([]byte, error) {
	if c.k == nil {
		return nil, errors.New(errors.ErrInternal, "configuration was not loaded")
	}
	data, err := gotoml.Marshal(c.k.Raw())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

// String implements fmt.Stringer for debug logging
func (c *Config) String() string {
	return fmt.Sprintf("unity.editors_dir=%s unity.editor_path=%s unity.results_path=%s unity.timeout=%s report.verify_counts=%t output.color=%s",
		c.Unity.EditorsDir, c.Unity.EditorPath, c.Unity.ResultsPath, c.Unity.Timeout, c.Report.VerifyCounts, c.Output.Color)
}
