// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides structured logging for the spacefx client
// libraries on top of log/slog.
//
// A single global logger is configured once at startup via SetupLogger and
// shared by all packages. Output goes to stderr in text format by default;
// JSON output and debug level can be enabled programmatically or through the
// SPACEFX_DEBUG environment variable.
//
// Library packages log sparingly: validation verdicts are returned, not
// logged, and only swallowed internal failures (such as filesystem
// resolution errors during path containment checks) are surfaced here at
// debug level.
package logutil
