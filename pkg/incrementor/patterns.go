package incrementor

import (
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches parsed tags.
var validate = validator.New()

// IsDigits reports whether s matches ^[0-9]+$.
func IsDigits(s string) bool {
	return validate.Var(s, "number") == nil
}

// isLetters reports whether s matches ^[a-zA-Z]+$.
func isLetters(s string) bool {
	return validate.Var(s, "alpha") == nil
}
