// Package redact scrubs sensitive material from strings before they reach
// logs or error responses. The patterns cover what this service can plausibly
// leak: postgres connection strings, the JWT signing secret and bearer
// tokens, parent and staff email addresses, file paths, SQL fragments, and
// internal host names.
package redact

import "regexp"

// rule pairs a pattern with the placeholder that replaces its matches.
// Rules apply in order; credential patterns run first so that broader ones
// (host names, paths) operate on already-scrubbed text.
type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

var rules = []rule{
	// postgres://user:password@ in connection strings
	{regexp.MustCompile(`(?i)postgres(?:ql)?://[^@\s]+@`), "[REDACTED_CREDENTIAL]"},
	// password=... style parameters
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), "[REDACTED_CREDENTIAL]"},
	// three-part base64url JWTs, before the keyword rule so the token body
	// is gone by the time "token:" itself is inspected
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},
	// secret/token/key followed by a value
	{regexp.MustCompile(`(?i)(jwt[_-]?secret|secret|token|api[_-]?key|key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), "[REDACTED_KEY]"},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), "[REDACTED_PATH]"},
	// statement bodies surfaced by driver errors
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)[\s\w,*()]+(?:FROM|INTO|SET|TABLE|INDEX)(?:[\s\w,*()='"]+)?`), "[REDACTED_SQL]"},
	// host[:port] with a dotted domain
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`), "[REDACTED_HOST]"},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
