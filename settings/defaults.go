package settings

// defaults returns the built-in preference values. These are loaded first
// and can be overridden by base.yaml, profile YAML, and env vars. The
// display values come from stockDisplay so that a profile without
// display overrides leaves the stock rendering defaults in effect.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     ExporterStdout,
		"telemetry.endpoint":     "",
		"telemetry.service_name": "datakit",

		"display.float_precision": stockDisplay.FloatPrecision,
		"display.max_rows":        stockDisplay.MaxRows,
		"display.max_columns":     stockDisplay.MaxColumns,
		"display.line_width":      stockDisplay.LineWidth,
	}
}
