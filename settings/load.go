package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "DATAKIT_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where preference YAML files are
// located. Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load reads a preference profile using a layered hierarchy (highest
// precedence last):
//
//  1. Built-in defaults
//  2. Base preferences ({configDir}/base.yaml)
//  3. Profile preferences ({configDir}/{profile}.yaml)
//  4. Environment variables (DATAKIT_ prefix)
//
// Environment variable mapping uses key matching against loaded keys to
// resolve ambiguity between nesting separators and field-internal
// underscores:
//
//	DATAKIT_LOG_LEVEL                -> log.level
//	DATAKIT_DISPLAY_FLOAT_PRECISION  -> display.float_precision
//	DATAKIT_TELEMETRY_SERVICE_NAME   -> telemetry.service_name
func Load(profile string, opts ...Option) (*Preferences, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: built-in defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: base preferences (shared across all profiles).
	basePath := filepath.Join(o.configDir, "base.yaml")
	if err := k.Load(file.Provider(basePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading base preferences %s: %w", basePath, err)
	}

	// Layer 3: profile-specific preferences.
	profilePath := filepath.Join(o.configDir, profile+".yaml")
	if err := k.Load(file.Provider(profilePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading profile preferences %s: %w", profilePath, err)
	}

	// Layer 4: environment variables with DATAKIT_ prefix. A reverse
	// lookup from known keys resolves env vars like
	// DATAKIT_DISPLAY_FLOAT_PRECISION to "display.float_precision"
	// instead of an ambiguous "display.float.precision".
	envLookup := buildEnvLookup(k.Keys())

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ToLower(key)

			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}

			// Fallback: simple underscore-to-dot replacement.
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var prefs Preferences
	if err := k.Unmarshal("", &prefs); err != nil {
		return nil, fmt.Errorf("unmarshalling preferences: %w", err)
	}

	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("validating preferences: %w", err)
	}

	return &prefs, nil
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf
// dotted keys, e.g. "display_float_precision" -> "display.float_precision".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
