// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package validate

// ValidateHelmParameter reports whether parameter is a safe Helm parameter
// name (e.g. "app.replicas", "image_tag").
//
// Valid parameter names contain only letters, digits, '.', '_', and '-', and
// do not exceed MaxHelmParameterLength characters.
func ValidateHelmParameter(parameter string) bool {
	if isBlank(parameter) {
		return false
	}
	if len(parameter) > MaxHelmParameterLength {
		return false
	}
	return helmParameterPattern.MatchString(parameter)
}

// ValidateHelmValue reports whether value is a safe Helm value.
//
// Valid values contain only letters, digits, and the separators '.', '_',
// ':', '/', and '-' (enough for image references, hosts, and paths), and do
// not exceed MaxHelmValueLength characters.
func ValidateHelmValue(value string) bool {
	if isBlank(value) {
		return false
	}
	if len(value) > MaxHelmValueLength {
		return false
	}
	return helmValuePattern.MatchString(value)
}
