package errors

import (
	"fmt"
	"os/exec"
)

// InvalidTarget creates an error for a tree operation aimed at a bad parent
func InvalidTarget(reason string) *PickError {
	return New(ErrCodeInvalidTarget, fmt.Sprintf("invalid target: %s", reason))
}

// InvalidSelection creates an error for user input that matches no entry
func InvalidSelection(input string) *PickError {
	return New(ErrCodeInvalidSelection, fmt.Sprintf("no entry matches input '%s'", input)).
		WithDetail("input", input)
}

// EndOfInput creates an error for an exhausted input stream
func EndOfInput() *PickError {
	return New(ErrCodeEndOfInput, "input stream closed before a selection was made")
}

// DefinitionNotFound creates a definition file not found error
func DefinitionNotFound(path string) *PickError {
	return New(ErrCodeDefinitionNotFound, fmt.Sprintf("menu definition not found: %s", path)).
		WithDetail("path", path)
}

// DefinitionInvalid creates an unparseable definition file error
func DefinitionInvalid(path string, cause error) *PickError {
	return Wrap(cause, ErrCodeDefinitionInvalid, fmt.Sprintf("invalid menu definition: %s", path)).
		WithDetail("path", path)
}

// DefinitionValidation creates a schema validation failure error
func DefinitionValidation(cause error) *PickError {
	return Wrap(cause, ErrCodeDefinitionValidation, "menu definition failed validation").
		WithDetail("reason", cause.Error())
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *PickError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *PickError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ActionFailed creates an error for a menu action that returned one
func ActionFailed(label string, err error) *PickError {
	return Wrap(err, ErrCodeActionFailed, fmt.Sprintf("action for '%s' failed", label)).
		WithDetail("label", label)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *PickError {
	pickErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		pickErr = pickErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return pickErr
}

// CommandTimeout creates a command timeout error
func CommandTimeout(cmd string, timeout string) *PickError {
	return New(ErrCodeCommandTimeout,
		fmt.Sprintf("command '%s' did not finish within %s", cmd, timeout)).
		WithDetail("command", cmd).
		WithDetail("timeout", timeout)
}
