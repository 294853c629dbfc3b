// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetupLoggerWithWriterDebug(t *testing.T) {
	t.Setenv(EnvDebug, "")

	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, false)
	t.Cleanup(func() { SetupLogger(false, false) })

	Debug("debug message", "key", "value")
	if !strings.Contains(buf.String(), "debug message") {
		t.Errorf("debug output missing, got: %q", buf.String())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	t.Setenv(EnvDebug, "")

	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	t.Cleanup(func() { SetupLogger(false, false) })

	Debug("hidden message")
	if strings.Contains(buf.String(), "hidden message") {
		t.Errorf("debug message leaked at info level: %q", buf.String())
	}

	Info("visible message")
	if !strings.Contains(buf.String(), "visible message") {
		t.Errorf("info output missing, got: %q", buf.String())
	}
}

func TestStructuredOutputIsJSON(t *testing.T) {
	t.Setenv(EnvDebug, "")

	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)
	t.Cleanup(func() { SetupLogger(false, false) })

	Warn("structured", "field", 7)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (got %q)", err, buf.String())
	}
	if entry["msg"] != "structured" {
		t.Errorf("msg = %v, want structured", entry["msg"])
	}
}

func TestIsDebugEnabledFromEnv(t *testing.T) {
	SetupLogger(false, false)
	t.Setenv(EnvDebug, "true")
	if !IsDebugEnabled() {
		t.Error("SPACEFX_DEBUG=true should enable debug")
	}

	t.Setenv(EnvDebug, "")
	if IsDebugEnabled() {
		t.Error("debug should be off with env unset and info level")
	}
}
