// Package incrementor produces the "next" value of a typed input.
//
// Three incrementor types are supported:
//
//	integer  3       -> 4          (any Go number, same type back)
//	numeric  "23"    -> "0024"     (digit string, optional left padding)
//	alpha    "aZ"    -> "ba"       (letters, right-to-left carry)
//
// Errors are returned as values and carry an apperror code, so callers can
// branch with errors.Is:
//
//	next, err := incrementor.Increment(incrementor.Options{Type: incrementor.TypeAlpha}, "az")
//	if errors.Is(err, incrementor.ErrInvalidValue) {
//		...
//	}
//
// Alpha carry: 'z' becomes 'A' and stops, 'Z' becomes 'a' and carries to the
// left, any other letter moves to the next code point and stops. A carry that
// runs past the leftmost letter is dropped, so "ZZ" becomes "aa" and the
// length never changes.
package incrementor
