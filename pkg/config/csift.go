// Package config defines the configuration for csift runs. The types
// are plain data; loading and merging live alongside them.
package config

// Config holds the settings shared by every csift command.
type Config struct {
	// Jobs is the worker pool size. 0 means "auto" (CPU count).
	Jobs int `yaml:"jobs"`

	// KeepComments enables comment capture during lexing. Off, the
	// tokenizer discards comment text entirely.
	KeepComments bool `yaml:"keep_comments"`

	// ShowTime logs how long the lex/parse pipeline took.
	ShowTime bool `yaml:"show_time"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore,omitempty"`

	// LogLevel is the default logging level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Jobs:         0,
		KeepComments: true,
		ShowTime:     false,
		Ignore:       nil,
		LogLevel:     "info",
	}
}
