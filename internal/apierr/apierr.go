// Package apierr translates upstream and internal failures into the
// gateway's external error vocabulary.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"loro-backend/pkg/github"
)

// Kind is the gateway error class
type Kind int

const (
	KindNotFound Kind = iota
	KindRateLimited
	KindUpstream
	KindInternal
	KindInvalidRequest
)

var kinds = [...]string{
	KindNotFound:       "not_found",
	KindRateLimited:    "rate_limited",
	KindUpstream:       "upstream_error",
	KindInternal:       "internal",
	KindInvalidRequest: "invalid_request",
}

// String return Kind enum as a string
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return "unknown"
	}
	return kinds[k]
}

// Fixed messages of the classes that never pass upstream text through.
const (
	MsgNotFound       = "Repository not found"
	MsgRateLimited    = "Rate limited by GitHub"
	MsgUpstream       = "GitHub API error"
	MsgInternal       = "Internal server error"
	MsgInvalidRequest = "Invalid request"
)

// Error is a translated failure ready to be sent to the client.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// InvalidRequest returns an Error for malformed client input. The
// message is sent to the client as is.
func InvalidRequest(message string, cause error) *Error {
	if message == "" {
		message = MsgInvalidRequest
	}
	return &Error{Kind: KindInvalidRequest, Status: http.StatusBadRequest, Message: message, cause: cause}
}

// Translate maps err onto the gateway vocabulary. Rules are checked in
// order and the first match wins:
//
//  1. upstream reports a missing resource -> 404
//  2. upstream reports quota exhaustion -> 429
//  3. any other upstream API error -> upstream status and message
//  4. anything else -> 500 with a generic message
func Translate(err error) *Error {
	if err == nil {
		return nil
	}

	var translated *Error
	if errors.As(err, &translated) {
		return translated
	}

	apiErr, ok := github.AsAPIError(err)
	if !ok {
		return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: MsgInternal, cause: err}
	}

	msg := strings.ToLower(apiErr.Message)
	switch {
	case strings.Contains(msg, "not found") || apiErr.StatusCode == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: MsgNotFound, cause: err}
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "abuse detection") ||
		apiErr.StatusCode == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Status: http.StatusTooManyRequests, Message: MsgRateLimited, cause: err}
	}

	status := apiErr.StatusCode
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusBadGateway
	}
	message := apiErr.Message
	if message == "" {
		message = MsgUpstream
	}

	return &Error{Kind: KindUpstream, Status: status, Message: message, cause: err}
}
