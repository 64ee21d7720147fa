// Package types provides numeric helpers shared by the incrementors.
package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned when v+1 does not fit the type of v.
var ErrOverflow = errors.New("integer overflow")

var one = decimal.NewFromInt(1)

// IncInt returns v+1, or ErrOverflow when v is the maximum of T.
func IncInt[T constraints.Integer](v T) (T, error) {
	next := v + 1
	if next < v {
		return v, ErrOverflow
	}
	return next, nil
}

// AddOne returns v+1 in the same Go type as v.
// ok is false when v is not a number at all.
func AddOne(v any) (result any, ok bool, err error) {
	switch n := v.(type) {
	case int:
		return addInt(n)
	case int8:
		return addInt(n)
	case int16:
		return addInt(n)
	case int32:
		return addInt(n)
	case int64:
		return addInt(n)
	case uint:
		return addInt(n)
	case uint8:
		return addInt(n)
	case uint16:
		return addInt(n)
	case uint32:
		return addInt(n)
	case uint64:
		return addInt(n)
	case float32:
		return n + 1, true, nil
	case float64:
		return n + 1, true, nil
	case decimal.Decimal:
		return n.Add(one), true, nil
	case json.Number:
		d, err := decimal.NewFromString(string(n))
		if err != nil {
			return nil, true, fmt.Errorf("parse json number %q: %w", n, err)
		}
		return json.Number(d.Add(one).String()), true, nil
	default:
		return nil, false, nil
	}
}

func addInt[T constraints.Integer](v T) (any, bool, error) {
	next, err := IncInt(v)
	if err != nil {
		return nil, true, err
	}
	return next, true, nil
}

// IncDigits adds one to a base-10 digit string of any length.
// Leading zeros are not preserved: "00023" becomes "24".
func IncDigits(s string) (string, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("parse digits %q: %w", s, err)
	}
	return d.Add(one).String(), nil
}
