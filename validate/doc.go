// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package validate provides allow-list input validation for untrusted strings
// before they reach container runtimes, package managers, or cluster APIs.
//
// Every validator is a pure function over an immutable, package-level pattern
// registry: a given input always produces the same verdict, no validator
// mutates shared state, and all functions are safe for unbounded concurrent
// use without locking.
//
// # Validation Model
//
// Validators follow a whitelist (allow-list) approach: accept only inputs
// matching a known-good pattern and reject everything else by default. Each
// validator applies, in order:
//  1. Reject empty or whitespace-only input.
//  2. Reject input exceeding the kind's maximum length.
//  3. Match against the kind's compiled pattern.
//
// Invalid values produce a false verdict, never an error: a rejected value is
// an expected outcome, not an exceptional one.
//
// # Validated Kinds
//
//   - Docker image names and tags
//   - File names (including Windows reserved device names)
//   - Helm parameter names and values
//   - Kubernetes namespaces and resource names
//   - Generic identifiers and alphanumeric strings
//
// # Example Usage
//
//	if !validate.ValidateDockerImageName(image) {
//	    return fmt.Errorf("refusing to deploy image %q", image)
//	}
//
//	clean := validate.SanitizeInput(userInput, validate.AlphanumericChars)
//
// Path containment and shell-argument safety live in the security package.
package validate
