// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. Error text that flows through the logging
// layer can carry connection strings, credentials, or file paths; these
// helpers scrub the recognizable patterns so the logs stay safe to ship.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
)

// Precompiled regex patterns
var (
	// Database connection strings with inline credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres(ql)?|redis|mysql|db|database)://[^@\s]+@`)

	// password=..., passwd: ... and friends
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// Opaque tokens and secrets in key=value form
	secretRegex = regexp.MustCompile(`(?i)(token|secret|session[_-]?id|cookie)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{16,}`)

	// Absolute file paths
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{dbConnRegex, RedactedCredentialPlaceholder},
		{passwordRegex, RedactedCredentialPlaceholder},
		{secretRegex, RedactedTokenPlaceholder},
		{unixPathRegex, RedactedPathPlaceholder},
	}
)

// String replaces every recognized sensitive fragment in s with a placeholder.
func String(s string) string {
	for _, pp := range patternPlaceholders {
		s = pp.pattern.ReplaceAllString(s, pp.placeholder)
	}
	return s
}

// Error returns the redacted text of err, or "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
