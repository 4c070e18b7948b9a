package cors

import (
	"fmt"

	"github.com/ThorstenHans/spin-contrib-http/internal/headers"
	"github.com/ThorstenHans/spin-contrib-http/internal/methods"
	"github.com/ThorstenHans/spin-contrib-http/internal/origins"
)

// A Config is an immutable CORS policy.
// Obtain one by calling [NewConfig], typically once at application start,
// then share it freely: because a Config is never mutated after
// construction, it is safe for concurrent use by multiple goroutines
// without synchronization.
//
// The zero value is a policy that allows no origin.
type Config struct {
	origins      origins.Allowlist
	meths        string
	hdrs         string
	credentialed bool
	maxAge       int
}

// NewConfig assembles a CORS policy. Construction cannot fail:
// any input is accepted and merely normalized.
//
// Each of allowedOrigins, allowedMethods, and allowedHeaders is either
// the literal wildcard "*" or a single allowed value; comma-separated
// lists are not supported. An empty allowedOrigins is normalized to the
// null origin, which matches no request origin. The allowedMethods value
// is uppercased and stripped of whitespace.
//
// allowCredentials governs the Access-Control-Allow-Credentials response
// header. Note that, per the CORS protocol, enabling credentialed access
// causes responses to echo the exact request origin rather than the
// wildcard, even when allowedOrigins is the wildcard.
//
// maxAgeInSeconds, when positive, is emitted as Access-Control-Max-Age
// on preflight responses; any other value leaves that header unset.
func NewConfig(
	allowedOrigins string,
	allowedMethods string,
	allowedHeaders string,
	allowCredentials bool,
	maxAgeInSeconds int,
) *Config {
	return &Config{
		origins:      origins.Parse(allowedOrigins),
		meths:        methods.Normalize(allowedMethods),
		hdrs:         allowedHeaders,
		credentialed: allowCredentials,
		maxAge:       maxAgeInSeconds,
	}
}

// AllowedOrigins returns the configured origin value:
// the wildcard, the single allowed origin, or the null origin.
func (cfg *Config) AllowedOrigins() string {
	return cfg.origins.String()
}

// AllowedMethods returns the configured (normalized) method value.
func (cfg *Config) AllowedMethods() string {
	return cfg.meths
}

// AllowedHeaders returns the configured header-name value.
func (cfg *Config) AllowedHeaders() string {
	return cfg.hdrs
}

// AllowCredentials reports whether the policy allows credentialed access.
func (cfg *Config) AllowCredentials() bool {
	return cfg.credentialed
}

// MaxAgeInSeconds returns the configured max age;
// a value of zero or less means "unset".
func (cfg *Config) MaxAgeInSeconds() int {
	return cfg.maxAge
}

// OriginAllowed reports whether the policy allows the specified request
// origin, i.e. whether the configured origin value is the wildcard or
// matches origin exactly (case-sensitively). The null origin allows
// nothing.
func (cfg *Config) OriginAllowed(origin string) bool {
	return cfg.origins.Contains(origin)
}

// MethodAllowed reports whether the policy allows the specified HTTP
// method, i.e. whether the configured method value is the wildcard or
// matches method (after normalization).
func (cfg *Config) MethodAllowed(method string) bool {
	if cfg.meths == "" {
		return false
	}
	if cfg.meths == headers.ValueWildcard {
		return true
	}
	return cfg.meths == methods.Normalize(method)
}

// Clone returns a copy of cfg.
func (cfg *Config) Clone() *Config {
	if cfg == nil {
		return nil
	}
	clone := *cfg
	return &clone
}

// String returns a human-readable representation of cfg, for diagnostics.
func (cfg *Config) String() string {
	const tmpl = "cors.Config{origins: %q, methods: %q, headers: %q, " +
		"credentialed: %t, maxAge: %d}"
	return fmt.Sprintf(
		tmpl,
		cfg.origins.String(),
		cfg.meths,
		cfg.hdrs,
		cfg.credentialed,
		cfg.maxAge,
	)
}
