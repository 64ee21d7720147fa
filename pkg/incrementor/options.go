package incrementor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"

	"incrementor/pkg/apperror"
)

// rawOptions accepts any JSON type per field so that a badly typed
// leftPadLength is reported as INVALID_OPTION instead of a decode error.
type rawOptions struct {
	Type          any `json:"type"`
	LeftPadLength any `json:"leftPadLength"`
	LeftPadValue  any `json:"leftPadValue"`
}

// DecodeOptions parses options from JSON, e.g.
//
//	{"type": "numeric", "leftPadLength": 4, "leftPadValue": "0"}
//
// An unknown type is accepted here and rejected by Increment.
func DecodeOptions(data []byte) (Options, error) {
	var opts Options
	if err := opts.UnmarshalJSON(data); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Options) UnmarshalJSON(data []byte) error {
	var raw rawOptions
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperror.NewInvalidOption("options", "options must be a JSON object").WithCause(err)
	}

	length, err := decodePadLength(raw.LeftPadLength)
	if err != nil {
		return err
	}

	*o = Options{
		Type:          decodeType(raw.Type),
		LeftPadLength: length,
		LeftPadValue:  decodePadValue(raw.LeftPadValue),
	}
	return nil
}

func decodeType(v any) Type {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return Type(t)
	default:
		return Type(fmt.Sprint(t))
	}
}

// decodePadLength treats null, "" and false as absent.
func decodePadLength(v any) (int, error) {
	switch v {
	case nil, "", false:
		return 0, nil
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f < 0 || f > MaxPadLength {
		return 0, apperror.NewInvalidOption("leftPadLength", "leftPadLength has to be a number").
			WithDetail("leftPadLength", v)
	}
	return int(f), nil
}

// decodePadValue keeps the textual form; digits are checked when padding is applied.
func decodePadValue(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return p
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	default:
		return fmt.Sprint(p)
	}
}
