package incrementor

import (
	"incrementor/pkg/apperror"
	"incrementor/pkg/logger"
)

// Incrementor binds validated Options so that values can be incremented
// repeatedly without re-checking the configuration.
type Incrementor struct {
	opts Options
	log  *logger.Logger
}

// Option configures an Incrementor.
type Option func(*Incrementor)

// WithLogger sets the logger used to report rejected values.
func WithLogger(l *logger.Logger) Option {
	return func(i *Incrementor) {
		if l != nil {
			i.log = l
		}
	}
}

// New validates opts and returns a bound Incrementor.
// An empty Type defaults to TypeInteger.
func New(opts Options, fns ...Option) (*Incrementor, error) {
	if opts.Type == "" {
		opts.Type = DefaultOptions().Type
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	inc := &Incrementor{
		opts: opts,
		log:  logger.Nop(),
	}
	for _, fn := range fns {
		fn(inc)
	}
	inc.log = inc.log.WithComponent("incrementor").With("type", string(opts.Type))

	return inc, nil
}

// Options returns the bound options.
func (i *Incrementor) Options() Options {
	return i.opts
}

// Next returns the value following value.
func (i *Incrementor) Next(value any) (any, error) {
	next, err := Increment(i.opts, value)
	if err != nil {
		i.log.Debugw("increment rejected",
			"value", value,
			"code", apperror.CodeOf(err),
		)
		return nil, err
	}
	return next, nil
}

// Series returns the n values that follow start, in order.
func (i *Incrementor) Series(start any, n int) ([]any, error) {
	if n < 0 {
		return nil, apperror.NewInvalidOption("n", "series length has to be a non-negative number").
			WithDetail("n", n)
	}

	out := make([]any, 0, n)
	cur := start
	for k := 0; k < n; k++ {
		next, err := i.Next(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
		cur = next
	}
	return out, nil
}
