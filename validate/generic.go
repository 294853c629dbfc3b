// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package validate

import (
	"strings"
	"unicode"
)

// isBlank reports whether s is empty or consists solely of whitespace.
// Blank input is rejected by every validator before any pattern work.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsAlphanumeric reports whether s is non-empty, not all whitespace, and
// every character is a letter or digit (any case, any script).
func IsAlphanumeric(s string) bool {
	if isBlank(s) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsAlphanumericWithDash reports whether s is non-empty and contains only
// ASCII letters, digits, and hyphens.
func IsAlphanumericWithDash(s string) bool {
	if isBlank(s) {
		return false
	}
	return alphanumericDashPattern.MatchString(s)
}

// ValidateIdentifier reports whether s is a valid identifier (variable name,
// label key, and similar). Identifiers must start with a letter or
// underscore, continue with letters, digits, or underscores, and not exceed
// MaxIdentifierLength characters.
func ValidateIdentifier(identifier string) bool {
	if isBlank(identifier) {
		return false
	}
	if len(identifier) > MaxIdentifierLength {
		return false
	}
	return identifierPattern.MatchString(identifier)
}

// IsValidIdentifier is an alias for ValidateIdentifier.
func IsValidIdentifier(s string) bool {
	return ValidateIdentifier(s)
}

// SanitizeInput returns the characters of s that appear in allowedChars,
// preserving their original order. An empty result is valid output, not an
// error. Sanitization is idempotent: sanitizing an already-sanitized string
// returns it unchanged.
func SanitizeInput(s, allowedChars string) string {
	allowed := make(map[rune]struct{}, len(allowedChars))
	for _, r := range allowedChars {
		allowed[r] = struct{}{}
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := allowed[r]; ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}
