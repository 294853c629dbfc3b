// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package manifest validates deployment descriptors before their fields reach
// container runtimes, Helm, or the cluster API.
//
// A descriptor is a small YAML document naming the image, tag, namespace, and
// resource name to deploy, plus optional Helm value overrides. Validate
// applies the allow-list validators from the validate package to every field
// and reports each offending field; it never rewrites values.
package manifest

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/montge/azure-orbital-space-sdk-client/fileutil"
	"github.com/montge/azure-orbital-space-sdk-client/validate"
)

// maxManifestSize bounds descriptor files read from disk.
const maxManifestSize = 256 << 10

// Spec is a deployment descriptor.
type Spec struct {
	// Image is the Docker image name, without tag. Required.
	Image string `yaml:"image"`

	// Tag is the Docker tag to deploy. Optional; empty means the caller's
	// default.
	Tag string `yaml:"tag"`

	// Namespace is the target Kubernetes namespace. Required.
	Namespace string `yaml:"namespace"`

	// Name is the Kubernetes resource name for the deployment. Optional.
	Name string `yaml:"name"`

	// Values are Helm parameter overrides applied at install time.
	Values map[string]string `yaml:"values"`
}

// FieldError describes a descriptor field that failed validation.
type FieldError struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Kind  string `json:"kind"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: required %s is missing", e.Field, e.Kind)
	}
	return fmt.Sprintf("%s: %q is not a valid %s", e.Field, e.Value, e.Kind)
}

// Load reads and parses a deployment descriptor from path. It does not
// validate field contents; call Validate on the result.
func Load(path string) (*Spec, error) {
	data, err := fileutil.ReadFileLimited(path, maxManifestSize)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &spec, nil
}

// Validate checks every descriptor field against its allow-list validator
// and returns one FieldError per offending field, in stable order. An empty
// result means the descriptor is safe to hand to deployment tooling.
func (s *Spec) Validate() []FieldError {
	var errs []FieldError

	if s.Image == "" || !validate.ValidateDockerImageName(s.Image) {
		errs = append(errs, FieldError{Field: "image", Value: s.Image, Kind: "Docker image name"})
	}
	if s.Tag != "" && !validate.ValidateDockerTag(s.Tag) {
		errs = append(errs, FieldError{Field: "tag", Value: s.Tag, Kind: "Docker tag"})
	}
	if s.Namespace == "" || !validate.ValidateKubernetesNamespace(s.Namespace) {
		errs = append(errs, FieldError{Field: "namespace", Value: s.Namespace, Kind: "Kubernetes namespace"})
	}
	if s.Name != "" && !validate.ValidateKubernetesResourceName(s.Name) {
		errs = append(errs, FieldError{Field: "name", Value: s.Name, Kind: "Kubernetes resource name"})
	}

	keys := make([]string, 0, len(s.Values))
	for k := range s.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !validate.ValidateHelmParameter(k) {
			errs = append(errs, FieldError{Field: "values." + k, Value: k, Kind: "Helm parameter"})
			continue
		}
		if v := s.Values[k]; !validate.ValidateHelmValue(v) {
			errs = append(errs, FieldError{Field: "values." + k, Value: v, Kind: "Helm value"})
		}
	}

	return errs
}
