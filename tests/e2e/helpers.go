package main

import (
	"fmt"
	"os/exec"
)

// findPickBinary finds the pick binary under test.
// It relies on the Makefile setting the PATH to include the local ./bin directory.
func findPickBinary() (string, error) {
	path, err := exec.LookPath("pick")
	if err != nil {
		return "", fmt.Errorf("could not find 'pick' binary in PATH. Ensure 'make test-e2e' is used")
	}
	return path, nil
}
