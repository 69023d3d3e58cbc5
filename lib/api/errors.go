// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call. The set is closed: callers
// dispatch on Kind and never inspect HTTP status codes directly.
type Kind int

const (
	// KindUnknown covers transport failures, timeouts, and malformed
	// responses. The message carries no server content — callers must
	// treat it as opaque.
	KindUnknown Kind = iota
	// KindUnauthorized means the credential is missing, expired, or
	// revoked. The gateway has already fired OnUnauthorized by the time
	// the caller sees this error.
	KindUnauthorized
	// KindForbidden means the caller is authenticated but lacks the role
	// or permission for the operation. No session state changes.
	KindForbidden
	// KindValidation carries a server-supplied message, verbatim. These
	// are recoverable — the user fixes the form and resubmits.
	KindValidation
)

// String returns the kind name for logs and error output.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Fixed user-facing messages. Forbidden deliberately ignores the server
// payload; unauthorized is written for the "please sign in again" flow.
const (
	unauthorizedMessage = "your session has expired, please sign in again"
	forbiddenMessage    = "you do not have permission to use this feature — contact your administrator"
	unknownMessage      = "the request could not be completed, please try again"
)

// Error is the normalized error shape produced by the gateway. Callers
// can use errors.As to extract it:
//
//	var apiErr *api.Error
//	if errors.As(err, &apiErr) && apiErr.Kind == api.KindValidation { ... }
type Error struct {
	// Kind is the status classification.
	Kind Kind
	// Message is the human-readable description shown to the user.
	Message string
	// StatusCode is the HTTP status of the response, or 0 when the
	// request never produced one (network failure, encode error).
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
}

// IsKind reports whether err is an *Error with the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// UserMessage extracts the user-facing message from an error. For
// gateway errors this is the normalized Message; anything else falls
// back to the generic unknown-failure text so raw transport detail
// never reaches a view.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return unknownMessage
}
