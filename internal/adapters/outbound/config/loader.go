// Package config loads the validator configuration with koanf. Sources are
// layered, later ones winning: built-in defaults, the YAML config file,
// NEXTCHECK_ environment variables, then explicitly set CLI flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/nextcheck/nextcheck/internal/domain"
)

// FileName is the per-project config file looked up in the project root.
const FileName = ".nextcheck.yaml"

const envPrefix = "NEXTCHECK_"

// flagKeys maps CLI flag names onto config keys. Flags not listed here are
// not configuration and are never loaded.
var flagKeys = map[string]string{
	"max-depth":     "naming.max_depth",
	"ignore":        "naming.ignore",
	"check-imports": "checks.import_paths",
}

// listKeys are split on commas when they come from the environment.
var listKeys = map[string]bool{
	"directories.required":       true,
	"directories.optional":       true,
	"files.required":             true,
	"files.recommended":          true,
	"files.alternate_extensions": true,
	"naming.exempt_dirs":         true,
	"naming.ignore":              true,
}

// Loader implements domain.ConfigLoader.
type Loader struct {
	file   string
	flags  *pflag.FlagSet
	logger *slog.Logger
}

type Option func(*Loader)

// WithFile uses path instead of <project>/.nextcheck.yaml. The file must
// exist.
func WithFile(path string) Option {
	return func(l *Loader) { l.file = path }
}

// WithFlags layers the changed flags of fs over every other source.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(l *Loader) { l.flags = fs }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, o := range opts {
		o(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.DiscardHandler)
	}
	return l
}

// Load resolves the configuration for projectPath. A missing project config
// file is not an error; the defaults apply. projectPath itself need not exist.
func (l *Loader) Load(projectPath string) (domain.Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(domain.DefaultConfig()), "."), nil); err != nil {
		return domain.Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Config file
	path, err := l.configFile(projectPath)
	if err != nil {
		return domain.Config{}, err
	}
	if path != "" {
		l.logger.Debug("loading config file", "path", path)
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return domain.Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	// 3. Environment: NEXTCHECK_NAMING__MAX_DEPTH -> naming.max_depth
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envValue), nil); err != nil {
		return domain.Config{}, fmt.Errorf("loading env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if l.flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(l.flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(l.flags, f)
		}), nil); err != nil {
			return domain.Config{}, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg domain.Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (l *Loader) configFile(projectPath string) (string, error) {
	if l.file != "" {
		if _, err := os.Stat(l.file); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return l.file, nil
	}

	candidate := filepath.Join(projectPath, FileName)
	_, err := os.Stat(candidate)
	switch {
	case err == nil:
		return candidate, nil
	case errors.Is(err, os.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		// A project that is missing or is a file has no config.
		return "", nil
	default:
		return "", fmt.Errorf("config file: %w", err)
	}
}

func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if listKeys[key] {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return key, out
	}
	return key, value
}

// defaults flattens cfg into the dotted keys confmap expects.
func defaults(cfg domain.Config) map[string]interface{} {
	m := map[string]interface{}{
		"directories.required":       cfg.Directories.Required,
		"directories.optional":       cfg.Directories.Optional,
		"files.required":             cfg.Files.Required,
		"files.recommended":          cfg.Files.Recommended,
		"files.alternate_extensions": cfg.Files.AlternateExtensions,
		"naming.component":           cfg.Naming.Component,
		"naming.utility":             cfg.Naming.Utility,
		"naming.hook":                cfg.Naming.Hook,
		"naming.store":               cfg.Naming.Store,
		"naming.test":                cfg.Naming.Test,
		"naming.exempt_dirs":         cfg.Naming.ExemptDirs,
		"naming.max_depth":           cfg.Naming.MaxDepth,
		"checks.import_paths":        cfg.Checks.ImportPaths,
	}
	if len(cfg.Naming.Ignore) > 0 {
		m["naming.ignore"] = cfg.Naming.Ignore
	}
	return m
}
