package methods

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

// IsValid reports whether name is a valid method, [per the Fetch standard].
//
// [per the Fetch standard]: https://fetch.spec.whatwg.org/#concept-method
func IsValid(name string) bool {
	// Note: the production is identical to that of header names.
	return httpguts.ValidHeaderFieldName(name)
}

// Normalize uppercases name and strips all whitespace from it.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToUpper(name)), "")
}
