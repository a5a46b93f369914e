// Package authapi is the HTTP client for the external user-authentication API.
//
// The API exposes two endpoints, both taking and returning JSON:
//
//	POST /api/users/login     {"email", "password"}
//	POST /api/users/register  {"username", "email", "password"}
//
// Any 2xx status means success. Any other status is a rejection whose body
// may carry a human-readable "message" field.
//
// # Responses vs Errors
//
// The client decodes the body as JSON whatever the status, so a rejection is
// a normal *Response with OK() == false. Only transport failures and
// non-JSON bodies are returned as errors, always as *APIError:
//
//	resp, err := client.Login(ctx, authapi.LoginRequest{Email: e, Password: p})
//	switch {
//	case err != nil:
//	    // unreachable server, DNS failure, HTML error page...
//	case resp.OK():
//	    // signed in, resp.Token() may be set
//	default:
//	    // rejected, resp.Message() explains why
//	}
//
// # Retries and Timeouts
//
// There are none by default. Each call issues exactly one request and waits
// as long as the server takes. SetTimeout adds a deadline when wanted.
package authapi
