package service

import (
	"errors"

	"github.com/rs/zerolog"
)

// LogServiceError emits one structured record for a domain error raised inside
// the named service and returns the same error unchanged. The record carries
// the service name, the variant name, the resolved message and the full
// context, in that order. Errors that are not domain errors pass through
// without any log output.
//
// Logging is synchronous and fail-open: a broken sink never affects the
// request that raised the error.
func LogServiceError(logger zerolog.Logger, serviceName string, err error) error {
	var svcErr *Error
	if !errors.As(err, &svcErr) {
		return err
	}
	logger.Error().
		Str("error_in", serviceName).
		Str("error_name", svcErr.Name()).
		Str("error_message", svcErr.Message()).
		Interface("error_context", svcErr.Context()).
		Send()
	return err
}
