// Package mockapi is a small in-memory implementation of the auth API, for
// running the front-end without the real backend.
//
// Routes:
//
//	POST /api/users/register   201 {"id", "username", "email", "message"}
//	                           409 {"message": "Email already exists"}
//	POST /api/users/login      200 {"token", "message", "user"}
//	                           401 {"message": "Invalid credentials"}
//	GET  /health               200 {"status": "ok", "version", "users"}
//
// Malformed bodies and missing fields answer 400 with a message. Passwords
// are stored as bcrypt hashes; ids and tokens are random UUIDs. Every request
// is logged through the logging package.
//
// With Config.Advertise set the server announces itself over mDNS so
// `authdeck scan` can find it.
package mockapi
