// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package validate

// ValidateKubernetesNamespace reports whether namespace is a valid
// Kubernetes namespace name: a lowercase RFC 1123 DNS label of at most
// MaxKubernetesNamespaceLength characters that does not start or end with a
// hyphen.
func ValidateKubernetesNamespace(namespace string) bool {
	if isBlank(namespace) {
		return false
	}
	if len(namespace) > MaxKubernetesNamespaceLength {
		return false
	}
	return kubernetesNamespacePattern.MatchString(namespace)
}

// ValidateKubernetesResourceName reports whether resourceName is a valid
// Kubernetes resource name (pod, service, deployment, and similar): lowercase
// alphanumerics, hyphens, and dots, at most MaxKubernetesResourceNameLength
// characters, not starting or ending with a hyphen or dot.
func ValidateKubernetesResourceName(resourceName string) bool {
	if isBlank(resourceName) {
		return false
	}
	if len(resourceName) > MaxKubernetesResourceNameLength {
		return false
	}
	return kubernetesResourceNamePattern.MatchString(resourceName)
}
