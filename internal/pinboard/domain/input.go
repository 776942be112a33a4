package domain

import "strings"

// RawInput is an untyped field map as received from a form or JSON body.
type RawInput map[string]any

// String returns the field as a string. Missing and non-string values are "".
func (in RawInput) String(key string) string {
	s, _ := in[key].(string)
	return s
}

// Trimmed returns the field with surrounding whitespace removed.
func (in RawInput) Trimmed(key string) string {
	return strings.TrimSpace(in.String(key))
}
