// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package validate

import (
	"strings"
	"testing"
)

func TestValidateKubernetesNamespace(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		want      bool
	}{
		{name: "default", namespace: "default", want: true},
		{name: "hyphenated", namespace: "my-namespace", want: true},
		{name: "single char", namespace: "a", want: true},
		{name: "digits", namespace: "ns1", want: true},
		{name: "uppercase rejected", namespace: "INVALID", want: false},
		{name: "leading hyphen", namespace: "-invalid", want: false},
		{name: "trailing hyphen", namespace: "invalid-", want: false},
		{name: "dot rejected", namespace: "my.namespace", want: false},
		{name: "underscore rejected", namespace: "my_namespace", want: false},
		{name: "empty", namespace: "", want: false},
		{name: "whitespace only", namespace: " ", want: false},
		{name: "max length", namespace: strings.Repeat("a", MaxKubernetesNamespaceLength), want: true},
		{name: "over max length", namespace: strings.Repeat("a", MaxKubernetesNamespaceLength+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateKubernetesNamespace(tt.namespace); got != tt.want {
				t.Errorf("ValidateKubernetesNamespace(%q) = %v, want %v", tt.namespace, got, tt.want)
			}
		})
	}
}

func TestValidateKubernetesResourceName(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		want     bool
	}{
		{name: "pod name", resource: "my-pod", want: true},
		{name: "dotted name", resource: "service.v1", want: true},
		{name: "single char", resource: "x", want: true},
		{name: "uppercase rejected", resource: "INVALID", want: false},
		{name: "leading dot", resource: ".hidden", want: false},
		{name: "trailing dot", resource: "name.", want: false},
		{name: "leading hyphen", resource: "-name", want: false},
		{name: "underscore rejected", resource: "my_pod", want: false},
		{name: "empty", resource: "", want: false},
		{name: "whitespace only", resource: "\t", want: false},
		{name: "max length", resource: strings.Repeat("a", MaxKubernetesResourceNameLength), want: true},
		{name: "over max length", resource: strings.Repeat("a", MaxKubernetesResourceNameLength+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateKubernetesResourceName(tt.resource); got != tt.want {
				t.Errorf("ValidateKubernetesResourceName(%q) = %v, want %v", tt.resource, got, tt.want)
			}
		})
	}
}
