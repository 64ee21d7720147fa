package numerator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"incrementor/pkg/apperror"
	"incrementor/pkg/incrementor"
	"incrementor/pkg/logger"
)

// Generator produces the document number that follows a previous one.
type Generator interface {
	// Next returns the number following last for the given period.
	// An empty last starts a new sequence.
	Next(last string, period time.Time) (string, error)
}

// Parts is a document number split into its components.
type Parts struct {
	Prefix  string
	Year    int // zero when the config has no year
	Counter string
}

// Numerator formats and advances numbers for one Config.
type Numerator struct {
	cfg Config
	inc *incrementor.Incrementor
}

// Ensure compile-time interface compliance.
var _ Generator = (*Numerator)(nil)

// New validates cfg and creates a Numerator.
func New(cfg Config, log *logger.Logger) (*Numerator, error) {
	cfg = cfg.withDefaults()
	if cfg.Type == incrementor.TypeInteger {
		return nil, apperror.NewInvalidOption("type", "counter type must be numeric or alpha").
			WithDetail("type", string(cfg.Type))
	}

	if log == nil {
		log = logger.Nop()
	}
	inc, err := incrementor.New(cfg.options(), incrementor.WithLogger(log.With("prefix", cfg.Prefix)))
	if err != nil {
		return nil, err
	}

	return &Numerator{cfg: cfg, inc: inc}, nil
}

// Config returns the effective configuration.
func (n *Numerator) Config() Config {
	return n.cfg
}

// First returns the first number of a sequence for period.
func (n *Numerator) First(period time.Time) (string, error) {
	var counter string
	switch n.cfg.Type {
	case incrementor.TypeAlpha:
		counter = "a"
	default:
		next, err := n.inc.Next("0")
		if err != nil {
			return "", err
		}
		counter = next.(string)
	}
	return n.Format(period, counter), nil
}

// Next generates the next document number.
// Pattern: PREFIX-YEAR-XXXXX (e.g., INV-2026-00001)
//
// With IncludeYear the counter restarts when last belongs to another year.
func (n *Numerator) Next(last string, period time.Time) (string, error) {
	if n == nil {
		return "", apperror.NewInvalidOption("numerator", "numerator is not initialized")
	}
	if last == "" {
		return n.First(period)
	}

	parts, err := n.Parse(last)
	if err != nil {
		return "", err
	}
	if n.cfg.IncludeYear && parts.Year != period.Year() {
		return n.First(period)
	}

	next, err := n.inc.Next(parts.Counter)
	if err != nil {
		return "", fmt.Errorf("next after %q: %w", last, err)
	}
	return n.Format(period, next.(string)), nil
}

// Format creates the final number string.
func (n *Numerator) Format(period time.Time, counter string) string {
	parts := make([]string, 0, 3)
	if n.cfg.Prefix != "" {
		parts = append(parts, n.cfg.Prefix)
	}
	if n.cfg.IncludeYear {
		parts = append(parts, period.Format("2006"))
	}
	parts = append(parts, counter)
	return strings.Join(parts, n.cfg.Separator)
}

// Parse splits a formatted number into its parts.
func (n *Numerator) Parse(formatted string) (Parts, error) {
	rest := formatted
	if n.cfg.Prefix != "" {
		head := n.cfg.Prefix + n.cfg.Separator
		if !strings.HasPrefix(rest, head) {
			return Parts{}, n.parseError(formatted, "prefix")
		}
		rest = strings.TrimPrefix(rest, head)
	}

	parts := Parts{Prefix: n.cfg.Prefix}
	if n.cfg.IncludeYear {
		year, counter, ok := strings.Cut(rest, n.cfg.Separator)
		if !ok || len(year) != 4 || !incrementor.IsDigits(year) {
			return Parts{}, n.parseError(formatted, "year")
		}
		y, err := strconv.Atoi(year)
		if err != nil {
			return Parts{}, n.parseError(formatted, "year").WithCause(err)
		}
		parts.Year = y
		rest = counter
	}

	if rest == "" {
		return Parts{}, n.parseError(formatted, "counter")
	}
	parts.Counter = rest
	return parts, nil
}

func (n *Numerator) parseError(formatted, part string) *apperror.AppError {
	return apperror.NewInvalidValue(fmt.Sprintf("number does not match the configured format (%s)", part), formatted).
		WithDetail("part", part)
}
