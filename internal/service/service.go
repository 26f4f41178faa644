// Package service holds the task and user use cases. Handlers call into it
// with an already-authenticated actor; field and ownership rules are
// delegated to the policy package.
package service

import (
	"errors"
	"strings"
	apperrors "task-service/pkg/errors"
)

// PolicyRecorder counts policy outcomes per resource.
type PolicyRecorder interface {
	ObservePolicyDecision(resource, outcome string)
}

// outcome names a policy result for metrics: "allowed" or the error kind.
func outcome(err error) string {
	if err == nil {
		return outcomeAllowed
	}
	return string(apperrors.KindOf(err))
}

// isExpected reports whether err is a business outcome rather than a store
// or programming failure.
func isExpected(err error) bool {
	return apperrors.KindOf(err) != apperrors.KindUnexpected
}

// wrapUnexpected turns a raw store error into an internal error, leaving
// typed business errors untouched.
func wrapUnexpected(err error) error {
	if err == nil || isExpected(err) {
		return err
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.InternalServer(msgUnexpected, err)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
