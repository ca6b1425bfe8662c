// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments
// and capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/toyrsa/internal/configs"
)

// setupTestEnvironment points settings at temporary directories and resets
// command state. Returns the temporary root.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalUserSettings := configs.UserToyrsaSettings

	configs.UserToyrsaSettings = &configs.UserSettings{
		ConfigPath: filepath.Join(tempDir, "config"),
		DataPath:   filepath.Join(tempDir, "data"),
	}
	t.Setenv("NO_COLOR", "1")
	ResetGlobalState()

	t.Cleanup(func() {
		configs.UserToyrsaSettings = originalUserSettings
		ResetGlobalState()
	})

	return tempDir
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	collect := func(r io.Reader) {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}
	go collect(stdoutReader)
	go collect(stderrReader)

	err := fn()

	// Close writers to signal EOF.
	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Order of arrival does not matter to callers.
	first := <-outputChan
	second := <-outputChan

	return first + second, err
}

// runCLI executes the root command with args, feeding stdin to any prompts.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	ResetGlobalState()
	RootCmd.SetArgs(args)
	RootCmd.SetIn(strings.NewReader(stdin))

	return captureOutput(Execute)
}
