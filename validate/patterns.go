// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package validate

import "regexp"

// Maximum lengths for each validated kind. The Docker limits follow the
// registry distribution spec, the Kubernetes limits follow DNS label and
// subdomain bounds, and the filesystem limits follow common NAME_MAX values.
const (
	MaxDockerImageNameLength        = 255
	MaxDockerTagLength              = 128
	MaxFilenameLength               = 255
	MaxHelmParameterLength          = 255
	MaxHelmValueLength              = 1024
	MaxKubernetesNamespaceLength    = 63
	MaxKubernetesResourceNameLength = 253
	MaxIdentifierLength             = 255
)

// Character sets for use as SanitizeInput allow-lists.
const (
	// AlphanumericChars contains ASCII letters and digits.
	AlphanumericChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// AlphanumericWithSeparators adds the separators commonly accepted in
	// resource names and file names.
	AlphanumericWithSeparators = AlphanumericChars + "-_."

	// LowercaseAlphanumeric contains lowercase ASCII letters and digits.
	LowercaseAlphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

	// NumericChars contains the ASCII digits.
	NumericChars = "0123456789"

	// HexCharsLower contains lowercase hexadecimal digits.
	HexCharsLower = "0123456789abcdef"
)

// The pattern registry. Compiled once at package initialization and never
// mutated; shared read-only across all calls.
var (
	// Lowercase alphanumeric segments separated by single '.', '_', '-' or
	// '/'; cannot start or end with a separator, no consecutive separators.
	dockerImageNamePattern = regexp.MustCompile(`^[a-z0-9]+([._/-][a-z0-9]+)*$`)

	dockerTagPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	filenamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	helmParameterPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

	// Helm values additionally allow ':' and '/' so URLs and image
	// references pass.
	helmValuePattern = regexp.MustCompile(`^[a-zA-Z0-9._:/-]+$`)

	// RFC 1123 DNS label: lowercase alphanumeric and '-', no leading or
	// trailing '-'.
	kubernetesNamespacePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

	// DNS subdomain: lowercase alphanumeric, '-' and '.', no leading or
	// trailing '-' or '.'.
	kubernetesResourceNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9.-]*[a-z0-9])?$`)

	identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

	alphanumericDashPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

// windowsReservedNames are device names that cannot be used as file names on
// Windows, with or without an extension.
var windowsReservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}
