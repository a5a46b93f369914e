package urls

import "strings"

// DefaultAPIBaseURL is the development backend the mobile client was built
// against. Override with --api, AUTHDECK_API_URL or api.base_url.
const DefaultAPIBaseURL = "http://localhost:3000"

// API endpoint paths, relative to the base URL.
const (
	LoginPath    = "/api/users/login"
	RegisterPath = "/api/users/register"
	HealthPath   = "/health"
)

// ProjectURL is shown in the application header.
const ProjectURL = "github.com/muurk/authdeck"

// TroubleshootingGuide is printed by headless commands after a transport failure.
const TroubleshootingGuide = "https://muurk.github.io/authdeck/troubleshooting/"

// Join appends an endpoint path to a base URL, tolerating a trailing slash on
// the base.
func Join(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
