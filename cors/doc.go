/*
Package cors implements a [Cross-Origin Resource Sharing (CORS)] decision
engine along with [net/http] middleware built on top of it.

The engine is deliberately small: a [Config] holds an immutable policy
(a single allowed origin or the wildcard, likewise for methods and headers,
a credentials flag, and an optional max age), and the [Config.Evaluate]
method turns a request's Origin header, method, and
Access-Control-Request-Method header into a [Decision] that lists the
response headers to emit.

Note that the engine is advisory rather than enforcing: a request whose
origin is not allowed still proceeds to the underlying handler, merely
without any CORS response headers; browsers then deny the cross-origin
client access to the response. The one exception is [CORS-preflight
requests], which the middleware short-circuits with a 405 (Method Not
Allowed) status and the applicable CORS response headers.

Because preflight requests use [OPTIONS] as their method, you should not
prevent OPTIONS requests from reaching the middleware; otherwise, preflight
requests will not get properly handled and browser-based clients will
likely experience CORS-related errors.

[CORS-preflight requests]: https://developer.mozilla.org/en-US/docs/Glossary/Preflight_request
[Cross-Origin Resource Sharing (CORS)]: https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS
[OPTIONS]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Methods/OPTIONS
*/
package cors
