package incrementor

import (
	"github.com/goccy/go-json"

	"incrementor/pkg/apperror"
)

// Result is the outcome of one increment. Exactly one of Value and Err is set.
type Result struct {
	Value any
	Err   error
}

// Evaluate runs Increment and packs its outcome into a Result.
func Evaluate(opts Options, value any) Result {
	next, err := Increment(opts, value)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Value: next}
}

// OK reports whether the increment succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// MarshalJSON renders {"value": ..., "error": null} or {"value": null, "error": {...}}.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		Value any                `json:"value"`
		Error *apperror.AppError `json:"error"`
	}{}

	if r.Err == nil {
		out.Value = r.Value
		return json.Marshal(out)
	}

	appErr, ok := apperror.AsAppError(r.Err)
	if !ok {
		appErr = &apperror.AppError{Message: r.Err.Error()}
	}
	out.Error = appErr
	return json.Marshal(out)
}
