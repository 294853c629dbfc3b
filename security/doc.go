// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package security provides path-containment and shell-argument safety
// checks for untrusted input, complementing the pattern validators in the
// validate package.
//
// # Security Model
//
// This package follows defense-in-depth principles:
//  1. Validate all user input at boundaries
//  2. Resolve symbolic links before comparing paths
//  3. Use allowlists instead of denylists where possible
//  4. Fail securely (deny by default)
//
// # Path Safety
//
// ValidateFilePath composes, in order: length bounds, null-byte detection
// (literal and encoded), traversal-sequence detection (literal and
// percent-encoded), and a containment check against a base directory.
// Traversal detection runs before containment so that a crafted path can
// never reach the filesystem resolution step. Filesystem resolution errors
// are converted to a false verdict and never escape to the caller.
//
// # Shell Safety
//
// SanitizeShellArgument produces a single-quoted token that a
// POSIX-compatible shell reads back as one literal word. This is
// defense-in-depth, not a substitute for non-shell process APIs: prefer
// passing argument vectors directly whenever possible.
package security
