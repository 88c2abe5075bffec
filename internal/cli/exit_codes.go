package cli

import (
	"errors"

	"github.com/ariel-frischer/gocontract/contract"
	"github.com/ariel-frischer/gocontract/internal/config"
)

// Exit codes for the gocontract CLI.
// These codes support programmatic composition and CI integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitViolation indicates a contract violation surfaced to the CLI
	ExitViolation = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitConfigError indicates configuration loading or validation failed
	ExitConfigError = 3
)

// ExitCode maps a command error to its process exit code.
func ExitCode(err error) int {
	var verr *config.ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case contract.IsViolation(err):
		return ExitViolation
	case errors.As(err, &verr):
		return ExitConfigError
	default:
		return ExitInvalidArguments
	}
}
