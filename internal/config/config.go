package config

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"
	"time"

	"chaingen/internal/domain/entity"
	"chaingen/internal/pkg/apperrors"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the generator.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Source    SourceConfig    `mapstructure:"source"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// SourceConfig describes where the chain list document comes from.
type SourceConfig struct {
	URL       string        `mapstructure:"url"`
	Path      string        `mapstructure:"path"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// CacheConfig holds settings for the on-disk copy of the chain list.
type CacheConfig struct {
	Dir     string        `mapstructure:"dir"`
	File    string        `mapstructure:"file"`
	TTL     time.Duration `mapstructure:"ttl"`
	Offline bool          `mapstructure:"offline"`
}

// GeneratorConfig holds settings for the emitted Go source.
type GeneratorConfig struct {
	Mode      string `mapstructure:"mode"`
	Package   string `mapstructure:"package"`
	Output    string `mapstructure:"output"`
	Overrides string `mapstructure:"overrides"`
}

// RegisterFlags declares the command line flags understood by Load.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", ".", "directory containing chaingen.yaml")
	fs.String("source-url", "", "URL of the chain list document")
	fs.String("source-path", "", "local chain list file, skips the network fetch")
	fs.Duration("timeout", 0, "timeout for the network fetch")
	fs.StringP("out", "o", "", "path of the generated Go file")
	fs.String("package", "", "package name of the generated file")
	fs.String("mode", "", "malformed record policy: strict or lenient")
	fs.String("overrides", "", "YAML file with identifier and block time overrides")
	fs.String("cache-dir", "", "directory for the cached chains.json")
	fs.Duration("cache-ttl", 0, "reuse a cached document younger than this")
	fs.Bool("offline", false, "use the cached document only")
	fs.String("log-level", "", "log level")
	fs.String("log-encoding", "", "log encoding: console or json")
}

var flagKeys = map[string]string{
	"source-url":   "source.url",
	"source-path":  "source.path",
	"timeout":      "source.timeout",
	"out":          "generator.output",
	"package":      "generator.package",
	"mode":         "generator.mode",
	"overrides":    "generator.overrides",
	"cache-dir":    "cache.dir",
	"cache-ttl":    "cache.ttl",
	"offline":      "cache.offline",
	"log-level":    "logger.level",
	"log-encoding": "logger.encoding",
}

// Load reads configuration from file, environment variables and flags.
// fs may be nil.
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "chaingen")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("source.url", "https://chainid.network/chains.json")
	v.SetDefault("source.path", "")
	v.SetDefault("source.timeout", "30s")
	v.SetDefault("source.user_agent", "chaingen/1.0")
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.file", "chains.json")
	v.SetDefault("cache.ttl", "0s")
	v.SetDefault("cache.offline", false)
	v.SetDefault("generator.mode", string(entity.ParseModeStrict))
	v.SetDefault("generator.package", "")
	v.SetDefault("generator.output", "chains_gen.go")
	v.SetDefault("generator.overrides", "")

	v.SetConfigName("chaingen")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("CHAINGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	aliases := map[string][]string{
		"source.url":        {"SOURCE_URL", "CHAINS_JSON_URL", "CHAINGEN_SOURCE_URL"},
		"source.path":       {"SOURCE_PATH", "CHAINS_JSON_PATH", "CHAINGEN_SOURCE_PATH"},
		"cache.dir":         {"CHAINGEN_CACHE_DIR", "CHAINS_JSON_DIR"},
		"generator.package": {"CHAINGEN_GENERATOR_PACKAGE", "GOPACKAGE"},
	}
	for key, envs := range aliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Generator.Package == "" {
		cfg.Generator.Package = "chains"
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = filepath.Dir(cfg.Generator.Output)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that cannot drive a generation run.
func (c *Config) Validate() error {
	if _, err := entity.ParseParseMode(c.Generator.Mode); err != nil {
		return fmt.Errorf("%w: generator.mode: %v", apperrors.ErrInvalidInput, err)
	}
	if !token.IsIdentifier(c.Generator.Package) || c.Generator.Package == "_" {
		return fmt.Errorf("%w: generator.package %q is not a valid package name",
			apperrors.ErrInvalidInput, c.Generator.Package,
		)
	}
	if strings.TrimSpace(c.Generator.Output) == "" {
		return fmt.Errorf("%w: generator.output is empty", apperrors.ErrInvalidInput)
	}
	if c.Source.Path == "" && !c.Cache.Offline && strings.TrimSpace(c.Source.URL) == "" {
		return fmt.Errorf("%w: one of source.url or source.path is required", apperrors.ErrInvalidInput)
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("%w: source.timeout must be positive, got %v", apperrors.ErrInvalidInput, c.Source.Timeout)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache.ttl must not be negative", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(c.Cache.File) == "" {
		return fmt.Errorf("%w: cache.file is empty", apperrors.ErrInvalidInput)
	}
	return nil
}

// ParseMode returns the validated malformed-record policy.
func (c GeneratorConfig) ParseMode() entity.ParseMode {
	mode, err := entity.ParseParseMode(c.Mode)
	if err != nil {
		return entity.ParseModeStrict
	}
	return mode
}

// CachePath returns the location of the cached chain list document.
func (c CacheConfig) CachePath() string {
	return filepath.Join(c.Dir, c.File)
}

func (c SourceConfig) GetTimeout() time.Duration {
	return c.Timeout
}

func (c CacheConfig) GetTTL() time.Duration {
	return c.TTL
}
