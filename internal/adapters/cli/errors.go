package cli

import "localekit/internal/domain"

// Process exit codes.
const (
	ExitOK = iota
	ExitFailure
	ExitInput
	ExitOutput
	ExitOverrides
	ExitMissingKeys
)

// ExitCode maps a domain error code to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch domain.Code(err) {
	case "input_error":
		return ExitInput
	case "output_error":
		return ExitOutput
	case "invalid_overrides":
		return ExitOverrides
	case "missing_keys":
		return ExitMissingKeys
	default:
		return ExitFailure
	}
}
