// Package settings provides preference profiles and process-wide
// configuration togglers for the libraries the toolkit builds on.
//
// Preferences are loaded from YAML files with environment variable
// overrides using a layered system: defaults -> base.yaml ->
// {profile}.yaml -> env vars. Applying a preference group mutates global
// library state in place:
//
//   - log preferences install a redacting slog handler as the process
//     default logger;
//   - telemetry preferences register global OpenTelemetry tracer and
//     meter providers;
//   - display preferences set the toolkit's rendering defaults.
//
// None of the togglers lock: callers are responsible for serializing
// concurrent Apply/Reset calls.
package settings

import (
	"errors"
	"fmt"
)

// Preferences holds every preference group the toolkit knows how to apply.
type Preferences struct {
	Log       LogPreferences       `koanf:"log"`
	Telemetry TelemetryPreferences `koanf:"telemetry"`
	Display   DisplayPreferences   `koanf:"display"`
}

// LogPreferences holds structured logging settings.
type LogPreferences struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryPreferences holds OpenTelemetry settings.
type TelemetryPreferences struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// DisplayPreferences holds the toolkit's rendering defaults, consumed by
// the store package when formatting numbers and previewing tables.
type DisplayPreferences struct {
	FloatPrecision int `koanf:"float_precision"`
	MaxRows        int `koanf:"max_rows"`
	MaxColumns     int `koanf:"max_columns"`
	LineWidth      int `koanf:"line_width"`
}

// Validate checks all preference values and returns aggregated errors.
func (p *Preferences) Validate() error {
	return errors.Join(
		p.Log.validate(),
		p.Telemetry.validate(),
		p.Display.validate(),
	)
}

func (l *LogPreferences) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryPreferences) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case ExporterStdout, ExporterOTLP:
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == ExporterOTLP && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}

func (d *DisplayPreferences) validate() error {
	var errs []error

	if d.FloatPrecision < 0 {
		errs = append(errs, fmt.Errorf("display.float_precision must be >= 0, got %d", d.FloatPrecision))
	}
	if d.MaxRows < 1 {
		errs = append(errs, fmt.Errorf("display.max_rows must be >= 1, got %d", d.MaxRows))
	}
	if d.MaxColumns < 1 {
		errs = append(errs, fmt.Errorf("display.max_columns must be >= 1, got %d", d.MaxColumns))
	}
	if d.LineWidth < 1 {
		errs = append(errs, fmt.Errorf("display.line_width must be >= 1, got %d", d.LineWidth))
	}

	return errors.Join(errs...)
}
