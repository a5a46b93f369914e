// Package urls provides centralized constants for the API endpoints and
// documentation links used throughout the application.
//
// Usage:
//
//	import "github.com/muurk/authdeck/internal/urls"
//
//	endpoint := urls.Join(baseURL, urls.LoginPath)
package urls
