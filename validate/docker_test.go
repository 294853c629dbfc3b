// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package validate

import (
	"strings"
	"testing"
)

func TestValidateDockerImageName(t *testing.T) {
	tests := []struct {
		name  string
		image string
		want  bool
	}{
		{name: "simple name", image: "myapp", want: true},
		{name: "registry and path", image: "registry.io/my-app", want: true},
		{name: "nested path", image: "registry.io/team/my-app", want: true},
		{name: "underscores", image: "my_app", want: true},
		{name: "uppercase rejected", image: "MY-APP", want: false},
		{name: "mixed case rejected", image: "myApp", want: false},
		{name: "consecutive separators", image: "my..app", want: false},
		{name: "leading separator", image: "-myapp", want: false},
		{name: "trailing separator", image: "myapp/", want: false},
		{name: "space rejected", image: "my app", want: false},
		{name: "empty", image: "", want: false},
		{name: "whitespace only", image: "   ", want: false},
		{name: "max length", image: strings.Repeat("a", MaxDockerImageNameLength), want: true},
		{name: "over max length", image: strings.Repeat("a", MaxDockerImageNameLength+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateDockerImageName(tt.image); got != tt.want {
				t.Errorf("ValidateDockerImageName(%q) = %v, want %v", tt.image, got, tt.want)
			}
		})
	}
}

func TestValidateDockerTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{name: "latest", tag: "latest", want: true},
		{name: "semver", tag: "v1.0.0", want: true},
		{name: "sha tag", tag: "sha-abc123", want: true},
		{name: "uppercase allowed", tag: "RC1", want: true},
		{name: "underscore", tag: "build_42", want: true},
		{name: "space rejected", tag: "invalid tag", want: false},
		{name: "slash rejected", tag: "v1/2", want: false},
		{name: "colon rejected", tag: "v1:2", want: false},
		{name: "empty", tag: "", want: false},
		{name: "whitespace only", tag: "\t", want: false},
		{name: "max length", tag: strings.Repeat("a", MaxDockerTagLength), want: true},
		{name: "over max length", tag: strings.Repeat("a", MaxDockerTagLength+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateDockerTag(tt.tag); got != tt.want {
				t.Errorf("ValidateDockerTag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}
