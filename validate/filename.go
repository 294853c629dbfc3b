// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package validate

import (
	"path/filepath"
	"strings"
)

// ValidateFilename reports whether filename is a safe bare file name.
//
// Valid file names contain only letters, digits, '_', '.', and '-', carry no
// path separator, do not exceed MaxFilenameLength characters, and are not a
// Windows reserved device name (CON, PRN, AUX, NUL, COM1-COM9, LPT1-LPT9)
// before or after the extension, compared case-insensitively. Both '/' and
// '\' are treated as separators on every platform so a name validated on
// Linux stays safe when it reaches a Windows node.
func ValidateFilename(filename string) bool {
	if isBlank(filename) {
		return false
	}
	if len(filename) > MaxFilenameLength {
		return false
	}
	if strings.ContainsAny(filename, `/\`) {
		return false
	}
	if !filenamePattern.MatchString(filename) {
		return false
	}

	base := strings.ToUpper(strings.TrimSuffix(filename, filepath.Ext(filename)))
	if _, reserved := windowsReservedNames[base]; reserved {
		return false
	}
	return true
}

// IsSafeFilename is an alias for ValidateFilename.
func IsSafeFilename(filename string) bool {
	return ValidateFilename(filename)
}
