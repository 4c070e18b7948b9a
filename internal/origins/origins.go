// Package origins provides the origin-allowlist representation used by
// the CORS engine.
package origins

// Null is the sentinel origin value that matches no origin;
// see https://fetch.spec.whatwg.org/#append-a-request-origin-header.
const Null = "null"

const wildcard = "*"

type kind uint8

const (
	kindNone kind = iota // no origin allowed
	kindWildcard
	kindExact
)

// An Allowlist represents the set of Web origins allowed by a CORS policy:
// no origin at all, any origin (the wildcard), or a single exact origin.
// Representing the wildcard as a distinct case (rather than as a raw "*"
// string) rules out any collision with a hypothetical origin named "*".
//
// The zero value allows no origin.
type Allowlist struct {
	kind   kind
	origin string
}

// Parse derives an Allowlist from a raw configuration value.
// An empty value and the null sentinel both yield an Allowlist
// that allows no origin; a single asterisk yields the wildcard;
// any other value is taken as one exact origin
// (in ASCII serialized form, i.e. scheme, host, and optional port).
func Parse(raw string) Allowlist {
	switch raw {
	case "", Null:
		return Allowlist{kind: kindNone}
	case wildcard:
		return Allowlist{kind: kindWildcard}
	default:
		return Allowlist{kind: kindExact, origin: raw}
	}
}

// IsWildcard reports whether a allows any origin.
func (a Allowlist) IsWildcard() bool {
	return a.kind == kindWildcard
}

// IsExact reports whether a allows a single exact origin.
func (a Allowlist) IsExact() bool {
	return a.kind == kindExact
}

// Contains reports whether a allows origin.
// The comparison with an exact allowed origin is case-sensitive,
// per the serialization of origins.
func (a Allowlist) Contains(origin string) bool {
	switch a.kind {
	case kindWildcard:
		return true
	case kindExact:
		return a.origin == origin
	default:
		return false
	}
}

// String returns the configured origin value:
// the null sentinel, the wildcard, or the exact allowed origin.
func (a Allowlist) String() string {
	switch a.kind {
	case kindWildcard:
		return wildcard
	case kindExact:
		return a.origin
	default:
		return Null
	}
}
