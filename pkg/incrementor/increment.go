package incrementor

import (
	"errors"
	"strings"

	"incrementor/internal/core/types"
	"incrementor/pkg/apperror"
)

// Increment returns the value following value under opts.
//
// leftPadLength is checked first, then the type is dispatched. On failure the
// returned value is nil and err is an *apperror.AppError.
func Increment(opts Options, value any) (any, error) {
	if err := opts.validatePadLength(); err != nil {
		return nil, err
	}

	switch opts.Type {
	case TypeInteger:
		return NextInteger(value)

	case TypeNumeric:
		s, ok := value.(string)
		if !ok {
			return nil, numericValueError(value)
		}
		next, err := NextNumeric(s, opts.padding())
		if err != nil {
			return nil, err
		}
		return next, nil

	case TypeAlpha:
		s, ok := value.(string)
		if !ok {
			return nil, alphaValueError(value)
		}
		next, err := NextAlpha(s)
		if err != nil {
			return nil, err
		}
		return next, nil

	default:
		return nil, apperror.NewInvalidType(string(opts.Type))
	}
}

// NextInteger returns value+1 keeping the Go type of value.
// Padding never applies to integers.
func NextInteger(value any) (any, error) {
	next, ok, err := types.AddOne(value)
	if !ok {
		return nil, apperror.NewTypeMismatch(string(TypeInteger), value)
	}
	if err != nil {
		if errors.Is(err, types.ErrOverflow) {
			return nil, apperror.NewInvalidValue("value is the largest of its type and cannot be incremented", value).
				WithCause(err)
		}
		return nil, apperror.NewTypeMismatch(string(TypeInteger), value).WithCause(err)
	}
	return next, nil
}

// NextNumeric increments a digit string and left-pads the result.
// Leading zeros of s are dropped before padding, so "00023" with a pad
// length of 4 gives "0024".
func NextNumeric(s string, pad Padding) (string, error) {
	if !IsDigits(s) {
		return "", numericValueError(s)
	}

	next, err := types.IncDigits(s)
	if err != nil {
		return "", numericValueError(s).WithCause(err)
	}

	padValue, err := pad.resolve()
	if err != nil {
		return "", err
	}
	if padValue == "" {
		return next, nil
	}
	return LeftPad(next, pad.Length, padValue), nil
}

// NextAlpha advances a letter string by one with carry from the right.
func NextAlpha(s string) (string, error) {
	if !isLetters(s) {
		return "", alphaValueError(s)
	}

	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		switch b[i] {
		case 'z':
			b[i] = 'A'
			return string(b), nil
		case 'Z':
			// carry
			b[i] = 'a'
		default:
			b[i]++
			return string(b), nil
		}
	}

	// All letters carried; the overflow is dropped.
	return string(b), nil
}

// LeftPad prepends pad, repeated and cut as needed, until s is length bytes long.
// s is returned unchanged if it is already long enough or pad is empty.
func LeftPad(s string, length int, pad string) string {
	missing := length - len(s)
	if missing <= 0 || pad == "" {
		return s
	}
	fill := strings.Repeat(pad, missing/len(pad)+1)
	return fill[:missing] + s
}

func numericValueError(value any) *apperror.AppError {
	return apperror.NewInvalidValue("value needs to be a numeric value represented as a string", value)
}

func alphaValueError(value any) *apperror.AppError {
	return apperror.NewInvalidValue("value for type alpha must only have characters between a-z and A-Z", value)
}
