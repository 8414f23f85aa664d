package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/pick/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create a pick.yml or pass --config.\n")
		return err

	case errors.ErrCodeDefinitionNotFound:
		if pickErr, ok := err.(*errors.PickError); ok {
			fmt.Fprintf(os.Stderr, "❌ Menu definition '%s' not found\n", pickErr.Details["path"])
		} else {
			fmt.Fprintf(os.Stderr, "❌ Menu definition not found\n")
		}
		return err

	case errors.ErrCodeDefinitionInvalid:
		fmt.Fprintf(os.Stderr, "❌ Menu definition could not be parsed: %v\n", causeOf(err))
		return err

	case errors.ErrCodeDefinitionValidation:
		fmt.Fprintf(os.Stderr, "❌ Menu definition is not valid:\n%v\n", causeOf(err))
		return err

	case errors.ErrCodeCommandTimeout:
		if pickErr, ok := err.(*errors.PickError); ok {
			fmt.Fprintf(os.Stderr, "❌ Command '%s' timed out after %s\n",
				pickErr.Details["command"], pickErr.Details["timeout"])
		}
		return err

	case errors.ErrCodeCommandFailed:
		if pickErr, ok := err.(*errors.PickError); ok {
			if code, ok := pickErr.Details["exitCode"]; ok {
				fmt.Fprintf(os.Stderr, "❌ Command '%s' exited with status %v\n",
					pickErr.Details["command"], code)
				return err
			}
			fmt.Fprintf(os.Stderr, "❌ Command '%s' failed: %v\n",
				pickErr.Details["command"], causeOf(err))
		}
		return err

	default:
		// Generic error handling
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if pickErr, ok := err.(*errors.PickError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", pickErr.ToJSON())
			}
		}
		return err
	}
}

// causeOf unwraps one level so messages show the underlying problem rather
// than the classification wrapper.
func causeOf(err error) error {
	if pickErr, ok := err.(*errors.PickError); ok && pickErr.Cause != nil {
		return pickErr.Cause
	}
	return err
}
