package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the canonical set of HTTP header names (lowercase) that
// carry credentials and must be redacted before logging. It is shared with
// the HTTP middleware's RedactHeaders so the two lists cannot drift apart.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings (header.payload.signature), at least 10
// characters per segment so dotted version numbers are left alone.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// builtinFields are always redacted by name.
var builtinFields = []string{"password", "secret", "token"}

// newRedactAttr returns a masq ReplaceAttr function that redacts credential
// headers, the built-in and extra field names, and raw token values.
func newRedactAttr(extra []string) func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(builtinFields)+len(extra)+3)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range builtinFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			opts = append(opts, masq.WithFieldName(name))
		}
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
	)

	return masq.New(opts...)
}
