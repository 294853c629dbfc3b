// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// spacefx-guard validates untrusted identifiers, paths, and command
// arguments before deployment tooling uses them. Every check subcommand
// exits 0 when the input passes and 1 when it is rejected, so the tool
// slots directly into shell pipelines and CI guards.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
