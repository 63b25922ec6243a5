// Package common provides tests for message and logging functionality
package common

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetVerboseMode(t *testing.T) {
	SetVerboseMode(true)
	if !VerboseMode {
		t.Error("SetVerboseMode(true) should enable verbose mode")
	}

	SetVerboseMode(false)
	if VerboseMode {
		t.Error("SetVerboseMode(false) should disable verbose mode")
	}
}

func TestLogDebug_VerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	defer SetVerboseMode(false)

	SetVerboseMode(true)
	LogDebug(DebugRegionDone, "head", 96)

	output := buf.String()
	if !strings.Contains(output, "[DEBUG] Region head: 96 blocks") {
		t.Errorf("LogDebug output should contain formatted message, got: %q", output)
	}
}

func TestLogDebug_VerboseDisabled(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	SetVerboseMode(false)
	LogDebug("This should not appear", 42)

	if buf.Len() != 0 {
		t.Errorf("LogDebug should be silent when verbose mode is disabled, got: %q", buf.String())
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name   string
		logFn  func(string, ...interface{})
		prefix string
	}{
		{"info", LogInfo, "[INFO]"},
		{"warn", LogWarn, "[WARN]"},
		{"error", LogError, "[ERROR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log.SetOutput(&buf)
			defer log.SetOutput(os.Stderr)

			tt.logFn("value: %d", 7)
			output := buf.String()
			if !strings.Contains(output, tt.prefix+" value: 7") {
				t.Errorf("output %q should contain %q", output, tt.prefix+" value: 7")
			}
		})
	}
}

func TestLogFunctions_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	// A literal percent sign must survive when no args are given.
	LogInfo("100% done")

	if !strings.Contains(buf.String(), "100% done") {
		t.Errorf("LogInfo without args should print message verbatim, got: %q", buf.String())
	}
}

func TestFormatError(t *testing.T) {
	formatted := FormatError(ErrFailedToLoadSkin, fmt.Errorf("original error"))

	expected := "failed to load skin: original error"
	if formatted.Error() != expected {
		t.Errorf("FormatError() = %q, want %q", formatted.Error(), expected)
	}
}

func TestFormatError_NonError(t *testing.T) {
	formatted := FormatError(ErrInvalidSkinDimensions, "64x48")
	if formatted.Error() != "invalid skin dimensions: 64x48" {
		t.Errorf("FormatError() = %q", formatted.Error())
	}
}

func TestSetLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skinstatue.log")

	SetLogFile(path)
	LogInfo("written to file")
	if err := CloseLogFile(); err != nil {
		t.Fatalf("CloseLogFile() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] written to file") {
		t.Errorf("log file content = %q", string(data))
	}
}

func TestErrorConstants(t *testing.T) {
	errorConstants := map[string]string{
		"ErrFailedToLoadSkin":         ErrFailedToLoadSkin,
		"ErrInvalidSkinDimensions":    ErrInvalidSkinDimensions,
		"ErrInvalidConfig":            ErrInvalidConfig,
		"ErrFailedToReadConfig":       ErrFailedToReadConfig,
		"ErrFailedToParseConfig":      ErrFailedToParseConfig,
		"ErrUnknownColorMode":         ErrUnknownColorMode,
		"ErrFailedToEncode":           ErrFailedToEncode,
		"ErrDimensionOverflow":        ErrDimensionOverflow,
		"ErrFailedToCreateOutputFile": ErrFailedToCreateOutputFile,
	}

	for name, value := range errorConstants {
		if len(value) < 10 {
			t.Errorf("Error constant %s seems too short: %q", name, value)
		}
	}
}
