package core

// # Error Codes Reference
//
// User-facing messages with codes for support reference. When a page shows
// an error, the code identifies which of these fired.
//
// # Source Errors (SRC001-SRC099)
//
//	SRC001 - Collection source not found
//	         Action: Check CATALOG_SOURCE points at an existing spreadsheet
//	         Matches: LoadError of kind SourceUnavailable
//
//	SRC002 - Collection could not be read
//	         Action: Re-export the spreadsheet and try again
//	         Matches: LoadError of kind SourceUnreadable
//
//	SRC003 - Unsupported file type
//	         Action: Use .xlsx, .csv or .tsv
//	         Matches: cause errUnsupportedFormat
//
//	SRC004 - Spreadsheet has no header row
//	         Action: Put column names (Artist, Title, ...) in the first row
//	         Matches: cause errNoHeader
//
//	SRC005 - Worksheet not found
//	         Action: Check CATALOG_SHEET or leave it empty to use the first sheet
//	         Matches: cause errSheetNotFound
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request was cancelled           Matches: "context canceled"
//	REQ002 - Request timed out               Matches: "context deadline exceeded", "timeout"
//	REQ003 - Invalid request parameters      Matches: "invalid request"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Too many requests              Matches: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - An unexpected error occurred
//
// Specific causes are checked before the generic LoadError kinds, so an
// unreadable source caused by a missing header reports SRC004, not SRC002.
// Any other LoadError reports SRC001 or SRC002 even when its cause mentions
// a timeout. Text patterns only apply to errors that are not load failures,
// and only to the cause, never to the source path.

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgSourceUnavailable = UserMessage{
		Message: "Collection source not found",
		Action:  "Check CATALOG_SOURCE points at an existing spreadsheet",
		Code:    "SRC001",
	}
	msgSourceUnreadable = UserMessage{
		Message: "Collection could not be read",
		Action:  "Re-export the spreadsheet and try again",
		Code:    "SRC002",
	}
	msgUnsupportedFormat = UserMessage{
		Message: "Unsupported file type",
		Action:  "Use .xlsx, .csv or .tsv",
		Code:    "SRC003",
	}
	msgNoHeader = UserMessage{
		Message: "Spreadsheet has no header row",
		Action:  "Put column names (Artist, Title, ...) in the first row",
		Code:    "SRC004",
	}
	msgSheetNotFound = UserMessage{
		Message: "Worksheet not found",
		Action:  "Check CATALOG_SHEET or leave it empty to use the first sheet",
		Code:    "SRC005",
	}
	msgCancelled = UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "REQ001",
	}
	msgTimeout = UserMessage{
		Message: "Request timed out",
		Action:  "Please try again; large collections take longer to load",
		Code:    "REQ002",
	}
	msgInvalidRequest = UserMessage{
		Message: "Invalid request",
		Action:  "Check the query parameters and try again",
		Code:    "REQ003",
	}
	msgRateLimited = UserMessage{
		Message: "Too many requests",
		Action:  "Please wait a moment before trying again",
		Code:    "RATE001",
	}
)

// sourceCauses are the load causes with their own message. They are
// checked with errors.Is before the generic LoadError kinds.
var sourceCauses = []struct {
	target error
	msg    UserMessage
}{
	{errUnsupportedFormat, msgUnsupportedFormat},
	{errNoHeader, msgNoHeader},
	{errSheetNotFound, msgSheetNotFound},
}

// errorPatterns maps technical error text (case-insensitive) to user messages
// for errors that carry no sentinel. The first matching pattern wins.
var errorPatterns = []errorPattern{
	{pattern: "unsupported format", msg: msgUnsupportedFormat},
	{pattern: "no header row", msg: msgNoHeader},
	{pattern: "sheet not found", msg: msgSheetNotFound},
	{pattern: "context canceled", msg: msgCancelled},
	{pattern: "context deadline exceeded", msg: msgTimeout},
	{pattern: "timeout", msg: msgTimeout},
	{pattern: "invalid request", msg: msgInvalidRequest},
	{pattern: "rate limit", msg: msgRateLimited},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or check the server logs",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
//
// Example:
//
//	_, err := core.Load(ctx, "missing.xlsx", core.LoadOptions{})
//	msg := core.MapError(err)
//	// msg.Code == "SRC001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, sc := range sourceCauses {
		if errors.Is(err, sc.target) {
			return sc.msg
		}
	}

	// A failed load is reported as a load failure whatever its cause says.
	switch {
	case errors.Is(err, ErrSourceUnavailable):
		return msgSourceUnavailable
	case errors.Is(err, ErrSourceUnreadable):
		return msgSourceUnreadable
	case errors.Is(err, context.Canceled):
		return msgCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout
	}

	errStr := strings.ToLower(Cause(err))
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// Cause returns the underlying reason for a load failure, suitable for
// showing next to the mapped message. For other errors it returns err's text.
func Cause(err error) string {
	if err == nil {
		return ""
	}
	var le *LoadError
	if errors.As(err, &le) && le.Err != nil {
		return le.Err.Error()
	}
	return err.Error()
}
