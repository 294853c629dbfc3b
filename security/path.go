// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/montge/azure-orbital-space-sdk-client/logutil"
)

// MaxFilePathLength is the longest path accepted by ValidateFilePath,
// matching the common PATH_MAX of 4096 bytes.
const MaxFilePathLength = 4096

// pathTraversalPattern matches a bare ".." token, a separator followed by a
// dot, or a backslash followed by a dot.
var pathTraversalPattern = regexp.MustCompile(`\.\.|/\.|\\\.`)

// pathTraversalSequences are literal and percent-encoded traversal forms,
// scanned case-insensitively. "%252e%252e" catches the double-encoded
// variant without requiring a second decode pass.
var pathTraversalSequences = []string{
	"..",
	"/..",
	`.\`,
	`\..`,
	`..\`,
	"../",
	"%2e%2e",
	"%252e%252e",
	"..%2f",
	"..%5c",
}

// nullByteSequences are the literal and encoded null-byte forms rejected in
// file paths.
var nullByteSequences = []string{
	"\x00",
	`\0`,
	"%00",
	"\\u0000",
}

// ValidateFilePath reports whether path is safe to use and resolves inside
// basePath. It rejects, in order: empty or whitespace-only paths, paths
// longer than MaxFilePathLength, paths carrying any null-byte encoding,
// paths containing traversal sequences (see ContainsPathTraversal), and
// finally paths that do not resolve within basePath (see IsWithinDirectory).
func ValidateFilePath(path, basePath string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	if len(path) > MaxFilePathLength {
		return false
	}

	for _, nullByte := range nullByteSequences {
		if strings.Contains(path, nullByte) {
			return false
		}
	}

	if ContainsPathTraversal(path) {
		return false
	}

	return IsWithinDirectory(path, basePath)
}

// ContainsPathTraversal reports whether path contains a directory traversal
// sequence, in literal, URL-encoded, or double-URL-encoded form.
//
// The path is percent-decoded at most once: a single decode pass catches
// one level of encoding evasion, and the literal "%252e%252e" scan catches
// the double-encoded form. Triple-or-more encoding layers are out of scope;
// callers enforcing a stricter policy must decode before calling. A decode
// failure contributes nothing to the verdict.
func ContainsPathTraversal(path string) bool {
	if pathTraversalPattern.MatchString(path) {
		return true
	}

	lower := strings.ToLower(path)
	for _, sequence := range pathTraversalSequences {
		if strings.Contains(lower, sequence) {
			return true
		}
	}

	if decoded, err := url.PathUnescape(path); err == nil && decoded != path {
		if pathTraversalPattern.MatchString(decoded) {
			return true
		}
	}

	return false
}

// IsWithinDirectory reports whether path resolves to a location inside
// baseDirectory. Both arguments are tilde-expanded, absolutized, cleaned,
// and symlink-resolved before comparison, so "/var/app2" is never treated
// as inside "/var/app" and symlinks cannot escape the base. The base
// directory itself does not count as within itself.
//
// Any resolution failure yields a false verdict; the cause is logged at
// debug level and never propagated.
func IsWithinDirectory(path, baseDirectory string) bool {
	fullPath, ok := resolvePath(path)
	if !ok {
		return false
	}
	fullBase, ok := resolvePath(baseDirectory)
	if !ok {
		return false
	}

	if !strings.HasSuffix(fullBase, string(filepath.Separator)) {
		fullBase += string(filepath.Separator)
	}

	return strings.HasPrefix(fullPath, fullBase)
}

// resolvePath converts p to absolute, cleaned, symlink-resolved canonical
// form. Paths that do not exist yet resolve structurally: the cleaned
// absolute form is used when symlink evaluation finds nothing on disk.
func resolvePath(p string) (string, bool) {
	absPath, err := filepath.Abs(expandUser(p))
	if err != nil {
		debugLog("path resolution failed", "path", p, "error", err)
		return "", false
	}
	absPath = filepath.Clean(absPath)

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		if !os.IsNotExist(err) {
			debugLog("symlink resolution failed", "path", p, "error", err)
			return "", false
		}
		resolved = absPath
	}

	return resolved, true
}

// debugLog reports swallowed resolution failures through a logger scoped to
// this package. The logger is built per call so it always reflects the
// current global handler.
func debugLog(msg string, args ...any) {
	if logutil.IsDebugEnabled() {
		logutil.NewLogger("security").Debug(msg, args...)
	}
}

// expandUser replaces a leading "~" with the current user's home directory.
// Only the bare "~" and "~/..." forms expand; "~user/..." forms require a
// user database lookup and are returned unchanged, so they fail containment
// instead of resolving to another account's home. Unresolvable forms are
// likewise returned unchanged and fail containment later.
func expandUser(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~"+string(filepath.Separator)) && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
