// Package router tracks which screen is showing.
//
// The app starts on RouteLogin. Login offers a link that pushes
// RouteRegister; a successful login replaces the stack top with RouteHome so
// back navigation cannot return to the login form. A successful registration
// pushes RouteLogin.
//
// Stack satisfies the Navigator interface of the submit package.
package router
