// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"strings"
	"testing"
)

func TestContainsShellMetacharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "safe filename", input: "safe_filename.txt", want: false},
		{name: "plain words", input: "hello world", want: false},
		{name: "command chain", input: "file.txt && rm -rf /", want: true},
		{name: "pipe", input: "file | grep pattern", want: true},
		{name: "subshell", input: "$(id)", want: true},
		{name: "backtick", input: "`id`", want: true},
		{name: "redirect", input: "out > /dev/null", want: true},
		{name: "glob star", input: "a*b", want: true},
		{name: "glob question", input: "file?", want: true},
		{name: "tilde", input: "~", want: true},
		{name: "hash", input: "#comment", want: true},
		{name: "newline", input: "line1\nline2", want: true},
		{name: "tab", input: "a\tb", want: true},
		{name: "single quote", input: "it's", want: true},
		{name: "double quote", input: `say "hi"`, want: true},
		{name: "backslash", input: `a\b`, want: true},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsShellMetacharacters(tt.input); got != tt.want {
				t.Errorf("ContainsShellMetacharacters(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// posixUnquote reverses POSIX single-quote rules: the token must be a
// concatenation of '...' groups and \' escapes, or it is malformed.
func posixUnquote(s string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\'':
			j := strings.IndexByte(s[i+1:], '\'')
			if j < 0 {
				return "", false
			}
			b.WriteString(s[i+1 : i+1+j])
			i += j + 2
		case strings.HasPrefix(s[i:], `\'`):
			b.WriteByte('\'')
			i += 2
		default:
			return "", false
		}
	}
	return b.String(), true
}

func TestSanitizeShellArgument(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "empty", arg: "", want: "''"},
		{name: "safe file", arg: "safe-file.txt", want: "'safe-file.txt'"},
		{name: "embedded quotes", arg: "file'with'quotes", want: `'file'\''with'\''quotes'`},
		{name: "leading quote", arg: "'start", want: `''\''start'`},
		{name: "command injection attempt", arg: "x; rm -rf /", want: "'x; rm -rf /'"},
		{name: "dollar expansion attempt", arg: "$HOME", want: "'$HOME'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeShellArgument(tt.arg); got != tt.want {
				t.Errorf("SanitizeShellArgument(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

// Un-quoting any sanitized argument per POSIX rules must reproduce the
// original bytes, whatever they were.
func TestSanitizeShellArgumentRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"with space",
		"file'with'quotes",
		"'''",
		"newline\nand\ttab",
		"all the | & ; < > ( ) $ ` \\ \" metacharacters",
		"unicode ☂ argument",
		"-rf",
	}

	for _, in := range inputs {
		quoted := SanitizeShellArgument(in)
		got, ok := posixUnquote(quoted)
		if !ok {
			t.Errorf("SanitizeShellArgument(%q) = %q: not a well-formed single token", in, quoted)
			continue
		}
		if got != in {
			t.Errorf("round trip of %q via %q = %q", in, quoted, got)
		}
	}
}
