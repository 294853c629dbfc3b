// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package validate

// ValidateDockerImageName reports whether imageName is a well-formed Docker
// image name (e.g. "registry.io/my-app").
//
// Valid image names contain only lowercase alphanumeric segments separated by
// single '.', '_', '-', or '/' characters, never start or end with a
// separator, and do not exceed MaxDockerImageNameLength characters. Uppercase
// letters are rejected.
func ValidateDockerImageName(imageName string) bool {
	if isBlank(imageName) {
		return false
	}
	if len(imageName) > MaxDockerImageNameLength {
		return false
	}
	return dockerImageNamePattern.MatchString(imageName)
}

// ValidateDockerTag reports whether tag is a well-formed Docker tag
// (e.g. "latest", "v1.0.0", "sha-abc123").
//
// Valid tags contain only letters, digits, '_', '.', and '-', and do not
// exceed MaxDockerTagLength characters. Unlike image names, tags are
// case-insensitive.
func ValidateDockerTag(tag string) bool {
	if isBlank(tag) {
		return false
	}
	if len(tag) > MaxDockerTagLength {
		return false
	}
	return dockerTagPattern.MatchString(tag)
}
