// Package logging provides structured logging for authdeck.
//
// This package wraps a global zap logger with convenience functions for the
// few events worth recording: outbound API calls, form submissions, router
// transitions and requests served by the mock API.
//
// # Silent By Default
//
// Logging is disabled unless a level is supplied, either through
// InitializeWithOptions or the AUTHDECK_LOG_LEVEL environment variable:
//
//	if err := logging.InitializeWithOptions(logging.Options{
//	    Level: "debug",
//	    File:  "/tmp/authdeck.log",
//	}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// The interactive UI owns the terminal, so it always logs to a file.
// Headless commands and the mock server may log to stdout.
//
// # Sensitive Data
//
// Request bodies are never logged. LogAPICall records method, URL, status and
// timing only.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
