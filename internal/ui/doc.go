// Package ui renders the styled output of the headless authdeck commands.
//
// Unlike the interactive screens in internal/tui, these components render
// once and are printed: a Header banner naming the command and its inputs,
// then a Result box for success, failure or warning, with troubleshooting
// tips on failure. Printer ties them to a writer and the terminal width.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Login", "authdeck login", ui.Detail{Key: "API", Value: baseURL})
//	if err != nil {
//	    p.PrintError("Login failed", err, authapi.GetTroubleshootingHints(err))
//	}
//
// Logging stays silent unless AUTHDECK_LOG_LEVEL or --log-level is set, so
// this output is all the user sees.
package ui
