// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import "strings"

// ShellMetacharacters is the fixed set of characters with special meaning to
// command interpreters. Any of these can alter command structure when left
// unescaped.
const ShellMetacharacters = "|&;<>()$`\\\"'\n\r\t*?[]{}!#~"

// ContainsShellMetacharacters reports whether s contains any shell
// metacharacter.
func ContainsShellMetacharacters(s string) bool {
	return strings.ContainsAny(s, ShellMetacharacters)
}

// SanitizeShellArgument returns arg quoted as a single literal shell token.
//
// The argument is wrapped in single quotes and every embedded single quote
// is replaced with `'\''` (close quoting, escaped quote, reopen quoting), so
// a POSIX-compatible shell reads the result back as exactly the original
// bytes. The empty string quotes to "''".
//
// This is defense-in-depth only: it guarantees the argument stays one word,
// not that the downstream command treats that word safely. Prefer argument
// vectors over shell strings wherever the execution API allows it.
func SanitizeShellArgument(arg string) string {
	if arg == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
