package snake

import (
	"fmt"
	"strconv"
)

// Config controls the board and the starting snake.
type Config struct {
	Rows   int
	Cols   int
	Length int

	// MaxLength caps growth. It never exceeds MaxAge.
	MaxLength int

	Seed int64
}

// DefaultConfig returns the standard 10x30 board with a length-3 snake.
func DefaultConfig() Config {
	return Config{
		Rows:      10,
		Cols:      30,
		Length:    3,
		MaxLength: MaxAge,
		Seed:      1,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["length"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= MaxAge {
			c.Length = parsed
		}
	}
	if v, ok := cfg["max_length"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= MaxAge {
			c.MaxLength = parsed
		}
	}
	if c.MaxLength < c.Length {
		c.MaxLength = c.Length
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate reports configurations the engine cannot represent.
func (c Config) Validate() error {
	if c.Length < 1 || c.Length > MaxAge {
		return fmt.Errorf("snake: length %d outside [1,%d]", c.Length, MaxAge)
	}
	if c.MaxLength < c.Length || c.MaxLength > MaxAge {
		return fmt.Errorf("snake: max length %d outside [%d,%d]", c.MaxLength, c.Length, MaxAge)
	}
	return nil
}
