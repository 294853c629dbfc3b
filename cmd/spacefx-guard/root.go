// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/montge/azure-orbital-space-sdk-client/cliout"
	"github.com/montge/azure-orbital-space-sdk-client/logutil"
	"github.com/montge/azure-orbital-space-sdk-client/manifest"
	"github.com/montge/azure-orbital-space-sdk-client/security"
	"github.com/montge/azure-orbital-space-sdk-client/validate"
	"github.com/montge/azure-orbital-space-sdk-client/version"
)

// errRejected signals a failed verdict; main translates it to exit code 1.
var errRejected = errors.New("input rejected")

// verdict is the JSON output shape for check subcommands.
type verdict struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

func newRootCommand() *cobra.Command {
	var (
		outputFormat string
		debug        bool
	)

	root := &cobra.Command{
		Use:   "spacefx-guard",
		Short: "Allow-list validation for identifiers, paths, and shell arguments",
		Long: "spacefx-guard checks untrusted strings against strict allow-list rules\n" +
			"before they reach container runtimes, package managers, cluster APIs, or\n" +
			"shells. Check subcommands exit 0 when the input passes and 1 otherwise.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug, outputFormat == "json")
			if debug {
				cmd.Flags().VisitAll(func(f *pflag.Flag) {
					if f.Changed {
						logutil.Debug("flag set", "name", f.Name, "value", f.Value.String())
					}
				})
			}
			return cliout.SetFormat(outputFormat)
		},
	}

	root.PersistentFlags().StringVarP(&outputFormat, "output", "o", "default", "Output format (default, json)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newCheckCommand("image", "Docker image name", validate.ValidateDockerImageName),
		newCheckCommand("tag", "Docker tag", validate.ValidateDockerTag),
		newCheckCommand("filename", "file name", validate.ValidateFilename),
		newCheckCommand("identifier", "identifier", validate.ValidateIdentifier),
		newCheckCommand("namespace", "Kubernetes namespace", validate.ValidateKubernetesNamespace),
		newCheckCommand("resource", "Kubernetes resource name", validate.ValidateKubernetesResourceName),
		newCheckCommand("helm-param", "Helm parameter", validate.ValidateHelmParameter),
		newCheckCommand("helm-value", "Helm value", validate.ValidateHelmValue),
		newPathCommand(),
		newShellQuoteCommand(),
		newManifestCommand(),
		version.NewCommand(version.New("spacefx-guard"), &outputFormat),
	)

	return root
}

// newCheckCommand builds a subcommand that applies a single boolean validator
// to its argument.
func newCheckCommand(use, kind string, fn func(string) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <value>",
		Short: fmt.Sprintf("Check that a value is a valid %s", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportVerdict(kind, args[0], fn(args[0]))
		},
	}
}

func newPathCommand() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "path <path>",
		Short: "Check that a path is traversal-free and inside a base directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportVerdict("path within "+base, args[0], security.ValidateFilePath(args[0], base))
		},
	}
	cmd.Flags().StringVarP(&base, "base", "b", "", "Base directory the path must stay within")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}

func newShellQuoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell-quote <argument>",
		Short: "Quote an argument as one literal shell token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quoted := security.SanitizeShellArgument(args[0])
			if cliout.IsJSON() {
				return cliout.PrintJSON(map[string]string{"argument": args[0], "quoted": quoted})
			}
			cliout.Plain("%s", quoted)
			return nil
		},
	}
}

func newManifestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <file>",
		Short: "Validate every field of a deployment descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := manifest.Load(args[0])
			if err != nil {
				cliout.Error("%v", err)
				return err
			}

			fieldErrs := spec.Validate()
			if cliout.IsJSON() {
				if err := cliout.PrintJSON(map[string]any{
					"file":   args[0],
					"valid":  len(fieldErrs) == 0,
					"errors": fieldErrs,
				}); err != nil {
					return err
				}
			} else if len(fieldErrs) == 0 {
				cliout.Success("%s passes all field checks", args[0])
			} else {
				cliout.Error("%s has %d invalid field(s)", args[0], len(fieldErrs))
				for _, fe := range fieldErrs {
					cliout.Item("%s", fe.Error())
				}
			}

			if len(fieldErrs) > 0 {
				return errRejected
			}
			return nil
		},
	}
}

func reportVerdict(kind, value string, ok bool) error {
	if cliout.IsJSON() {
		if err := cliout.PrintJSON(verdict{Kind: kind, Value: value, Valid: ok}); err != nil {
			return err
		}
	} else if ok {
		cliout.Success("%q is a valid %s", value, kind)
	} else {
		cliout.Error("%q is not a valid %s", value, kind)
	}

	if !ok {
		return errRejected
	}
	return nil
}
