package headers

import (
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// header names in canonical format
const (
	// common request headers
	Origin = "Origin"

	// preflight-only request headers
	ACRM = "Access-Control-Request-Method"

	// common response headers
	ACAO = "Access-Control-Allow-Origin"
	ACAC = "Access-Control-Allow-Credentials"

	// preflight-only response headers
	ACAM = "Access-Control-Allow-Methods"
	ACAH = "Access-Control-Allow-Headers"
	ACMA = "Access-Control-Max-Age"

	Vary = "Vary"
)

const (
	ValueTrue     = "true"
	ValueFalse    = "false"
	ValueWildcard = "*"
)

// IsValid reports whether name is a valid header name,
// [per the Fetch standard].
//
// [per the Fetch standard]: https://fetch.spec.whatwg.org/#header-name
func IsValid(name string) bool {
	return httpguts.ValidHeaderFieldName(name)
}

// IsValidValue reports whether value is a valid header-field value,
// [per RFC 9110].
//
// [per RFC 9110]: https://httpwg.org/specs/rfc9110.html#fields.values
func IsValidValue(value string) bool {
	return httpguts.ValidHeaderFieldValue(value)
}

// First, if k is present in hdrs, returns the first value associated to k
// in hdrs and true; otherwise, First returns "" and false.
// Precondition: k is in canonical format (see [http.CanonicalHeaderKey]).
//
// Contrary to [http.Header.Get], First distinguishes an absent header
// from a header whose first value is empty.
func First(hdrs http.Header, k string) (string, bool) {
	v, found := hdrs[k]
	if !found || len(v) == 0 {
		return "", false
	}
	return v[0], true
}
