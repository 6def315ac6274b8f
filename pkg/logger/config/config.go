package config

import "fmt"

// levels follow zapcore.Level numbering
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

const (
	CONSOLE_ENCODING = "console"
	JSON_ENCODING    = "json"
)

type Configuration struct {
	Level      int
	TimeFormat string
	Encoding   string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("invalid log level %d, must be between %d and %d", c.Level, DEBUG_LEVEL, ERROR_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("log time format must not be empty")
	}
	switch c.Encoding {
	case CONSOLE_ENCODING, JSON_ENCODING, "":
	default:
		return fmt.Errorf("unsupported log encoding %q", c.Encoding)
	}
	return nil
}
