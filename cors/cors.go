package cors

import (
	"net/http"
	"strconv"

	"github.com/ThorstenHans/spin-contrib-http/internal/headers"
	"github.com/ThorstenHans/spin-contrib-http/internal/methods"
)

// A Decision is the outcome of evaluating one request against a CORS
// policy. A Decision is ephemeral: it pertains to a single request and
// should not be retained beyond it.
//
// Callers are expected to honor a Decision as follows:
//   - if IsPreflight is true, short-circuit with a
//     405 (Method Not Allowed) status and the Headers, without invoking
//     any application logic;
//   - otherwise, if IsCORS is true, attach the Headers to whatever
//     response the application logic produces;
//   - otherwise, proceed as if CORS did not apply.
type Decision struct {
	// IsCORS reports whether the request carried an Origin header,
	// i.e. whether it is a CORS request at all.
	IsCORS bool
	// IsPreflight reports whether the request qualifies as a
	// CORS-preflight request whose origin is allowed.
	IsPreflight bool
	// Headers maps response-header names (in canonical format) to the
	// values to emit. It is nil when there is nothing to emit, which is
	// the case both for non-CORS requests and for CORS requests whose
	// origin the policy does not allow; in the latter case the request
	// is not rejected, merely left without any CORS grant.
	Headers http.Header
}

// Evaluate decides how to respond, CORS-wise, to a request described by
// its Origin header value, its method, and its
// Access-Control-Request-Method header value; empty strings stand in for
// absent headers. Evaluate is a pure function of its inputs and cfg;
// it never fails: malformed header values simply degrade to absent ones.
//
// The resulting header set is assembled as follows:
//   - Access-Control-Allow-Credentials is always set (to "true" or
//     "false") when the origin is allowed;
//   - Access-Control-Allow-Origin echoes the request origin verbatim
//     when credentialed access is enabled (the wildcard is never emitted
//     in that case, per the CORS protocol), and the configured origin
//     value otherwise;
//   - on preflight only, Access-Control-Allow-Methods and
//     Access-Control-Allow-Headers carry the configured values, and
//     Access-Control-Max-Age is added when the policy specifies one.
func (cfg *Config) Evaluate(origin, method, requestedMethod string) Decision {
	if origin == "" || !headers.IsValidValue(origin) {
		// not a CORS request
		return Decision{}
	}
	d := Decision{IsCORS: true}
	if !cfg.OriginAllowed(origin) {
		return d
	}

	hdrs := make(http.Header)
	if cfg.credentialed {
		hdrs.Set(headers.ACAC, headers.ValueTrue)
		// The conjunction of the wildcard and credentialed access is
		// not tolerated by browsers; echo the request origin instead.
		hdrs.Set(headers.ACAO, origin)
	} else {
		hdrs.Set(headers.ACAC, headers.ValueFalse)
		hdrs.Set(headers.ACAO, cfg.origins.String())
	}

	if method == http.MethodOptions &&
		requestedMethod != "" &&
		methods.IsValid(requestedMethod) {
		d.IsPreflight = true
		hdrs.Set(headers.ACAM, cfg.meths)
		hdrs.Set(headers.ACAH, cfg.hdrs)
		if cfg.maxAge > 0 {
			hdrs.Set(headers.ACMA, strconv.Itoa(cfg.maxAge))
		}
	}
	d.Headers = hdrs
	return d
}

// EvaluateRequest is like [Config.Evaluate] but sources the origin,
// method, and requested preflight method from r.
//
// Fetch-compliant browsers send at most one Origin header and at most
// one Access-Control-Request-Method header; only the first value of
// each is considered.
func (cfg *Config) EvaluateRequest(r *http.Request) Decision {
	origin, _ := headers.First(r.Header, headers.Origin)
	acrm, _ := headers.First(r.Header, headers.ACRM)
	return cfg.Evaluate(origin, r.Method, acrm)
}
