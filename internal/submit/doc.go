// Package submit turns a filled-in login or register form into one API call
// and decides what the user sees next.
//
// Outcomes:
//
//   - empty required field: an "Error" alert, no request
//   - 2xx on login: replace the stack with the home route
//   - 2xx on register: a "Success" alert, then push the login route
//   - any other status: an "Error" alert with the server's message, or a
//     per-form fallback when the reply carries none
//   - transport or decode failure: logged, plus a generic "Error" alert
//
// There is no retry and no timeout beyond what the API client is configured
// with. While one submit is in flight a Controller refuses another unless
// Options.AllowConcurrent is set.
//
// Send and Apply split the work so the request can run off the UI goroutine
// while navigation and alerts stay on it. Submit does both.
package submit
