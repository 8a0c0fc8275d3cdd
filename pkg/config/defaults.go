package config

import "strings"

// ApplyDefaults fills in unspecified configuration fields.
//
// Zero values are replaced with defaults; explicit values are
// preserved. The unmapped-bit policy defaults to reject so that lossy
// translation never happens without an explicit opt-in.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	// Normalize for consistent internal representation
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)

	if cfg.Translator.Source == "" {
		cfg.Translator.Source = "posix"
	}
	if cfg.Translator.Target == "" {
		cfg.Translator.Target = "nfs4"
	}
	if cfg.Translator.OnUnmapped == "" {
		cfg.Translator.OnUnmapped = "reject"
	}
}
