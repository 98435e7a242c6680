package config

import "github.com/rshade/greencart/internal/logging"

// ToLoggingConfig converts the YAML logging section into a logging.Config.
// A configured file switches the output to that file; otherwise logs go to
// stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: lc.Caller,
	}
}
