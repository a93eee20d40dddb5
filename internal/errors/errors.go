package errors

import (
	"fmt"
	"os"

	"github.com/tanabodee/attendly/internal/logger"
)

// StructureError reports a remote page whose shape is unrecognized: no table
// rows in a document that is too large to be a plain "no records" page. It is
// never raised for an ordinary empty result.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid response structure from server: %s", e.Reason)
}

// FetchError reports that every relay path was exhausted. Its message is the
// user-facing connectivity failure; per-path causes ride along for the log.
type FetchError struct {
	Attempts []error
}

func (e *FetchError) Error() string {
	return "Failed to connect to Company Server. Please check your internet connection."
}

func (e *FetchError) Unwrap() []error {
	return e.Attempts
}

// ValidationError reports rejected user input, e.g. an empty employee number.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
