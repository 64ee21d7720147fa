// Package numerator formats and advances document numbers such as INV-2026-00042.
package numerator

import (
	"incrementor/pkg/incrementor"
)

// DefaultPadWidth is the counter width used when Config.PadWidth is zero.
const DefaultPadWidth = 5

// DefaultSeparator joins prefix, year and counter.
const DefaultSeparator = "-"

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "INV", "GR")
	Prefix string

	// IncludeYear adds year to the number and restarts the counter every year
	IncludeYear bool

	// Type of the counter: numeric (default) or alpha
	Type incrementor.Type

	// PadWidth is the minimum numeric counter width (default 5)
	PadWidth int

	// PadValue is the digit used for padding (default "0")
	PadValue string

	// Separator between parts (default "-")
	Separator string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		Type:        incrementor.TypeNumeric,
		PadWidth:    DefaultPadWidth,
	}
}

func (c Config) withDefaults() Config {
	if c.Type == "" {
		c.Type = incrementor.TypeNumeric
	}
	if c.PadWidth == 0 {
		c.PadWidth = DefaultPadWidth
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	return c
}

// options maps the config onto incrementor options. Padding only applies to
// numeric counters.
func (c Config) options() incrementor.Options {
	opts := incrementor.Options{Type: c.Type}
	if c.Type == incrementor.TypeNumeric {
		opts.LeftPadLength = c.PadWidth
		opts.LeftPadValue = c.PadValue
	}
	return opts
}
