package incrementor

import (
	"fmt"

	"incrementor/pkg/apperror"
)

// Type selects the increment rules.
type Type string

const (
	// TypeInteger adds one to a Go number.
	TypeInteger Type = "integer"
	// TypeNumeric adds one to a digit string and optionally left-pads it.
	TypeNumeric Type = "numeric"
	// TypeAlpha advances a letter string with carry.
	TypeAlpha Type = "alpha"
)

// IsValid checks if the type is one of the known incrementor types.
func (t Type) IsValid() bool {
	switch t {
	case TypeInteger, TypeNumeric, TypeAlpha:
		return true
	}
	return false
}

// Errors returned by the incrementors. Match them with errors.Is.
var (
	ErrInvalidOption   = apperror.ErrInvalidOption
	ErrInvalidType     = apperror.ErrInvalidType
	ErrTypeMismatch    = apperror.ErrTypeMismatch
	ErrInvalidValue    = apperror.ErrInvalidValue
	ErrInvalidPadValue = apperror.ErrInvalidPadValue
)

// defaultPadValue is used when LeftPadValue is empty.
const defaultPadValue = "0"

// MaxPadLength is the largest accepted LeftPadLength.
const MaxPadLength = 1 << 16

// Options configures a single increment.
type Options struct {
	// Type selects the rules to apply
	Type Type `json:"type"`

	// LeftPadLength is the minimum length of a numeric result.
	// Zero disables padding. Only used by TypeNumeric.
	LeftPadLength int `json:"leftPadLength,omitempty"`

	// LeftPadValue is the digit string used for padding (default "0").
	LeftPadValue string `json:"leftPadValue,omitempty"`
}

// DefaultOptions returns options for plain integer increments.
func DefaultOptions() Options {
	return Options{Type: TypeInteger}
}

// Padding describes left padding of a numeric result.
type Padding struct {
	Length int
	Value  string
}

func (o Options) padding() Padding {
	return Padding{Length: o.LeftPadLength, Value: o.LeftPadValue}
}

// Validate checks the options without looking at a value.
func (o Options) Validate() error {
	if err := o.validatePadLength(); err != nil {
		return err
	}
	if !o.Type.IsValid() {
		return apperror.NewInvalidType(string(o.Type))
	}
	if o.Type == TypeNumeric {
		if _, err := o.padding().resolve(); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) validatePadLength() error {
	return checkPadLength(o.LeftPadLength)
}

func checkPadLength(n int) error {
	if n < 0 {
		return apperror.NewInvalidOption("leftPadLength", "leftPadLength has to be a non-negative number").
			WithDetail("leftPadLength", n)
	}
	if n > MaxPadLength {
		return apperror.NewInvalidOption("leftPadLength", fmt.Sprintf("leftPadLength must not exceed %d", MaxPadLength)).
			WithDetail("leftPadLength", n)
	}
	return nil
}

// resolve returns the pad value to use, or an error if it is not a digit string.
// Padding that is switched off is never validated.
func (p Padding) resolve() (string, error) {
	if err := checkPadLength(p.Length); err != nil {
		return "", err
	}
	if p.Length == 0 {
		return "", nil
	}
	pad := p.Value
	if pad == "" {
		pad = defaultPadValue
	}
	if !IsDigits(pad) {
		return "", apperror.NewInvalidPadValue(pad)
	}
	return pad, nil
}
