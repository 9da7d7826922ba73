package anythingllm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Kind classifies every failure the client can return. The retry loop
// switches on it instead of on concrete error types.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindNetwork
	KindAuthentication
	KindValidation
	KindAPI
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindNetwork:
		return "network"
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindAPI:
		return "api"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Sentinels matched through errors.Is against an *Error.
var (
	ErrConfiguration  = errors.New("anythingllm: invalid configuration")
	ErrNetwork        = errors.New("anythingllm: network failure")
	ErrAuthentication = errors.New("anythingllm: authentication failed")
	ErrValidation     = errors.New("anythingllm: invalid payload")
	ErrAPI            = errors.New("anythingllm: request rejected")
	ErrServer         = errors.New("anythingllm: server error")

	ErrNotFound        = errors.New("anythingllm: not found")
	ErrRateLimited     = errors.New("anythingllm: rate limited")
	ErrClientClosed    = errors.New("anythingllm: client is closed")
	ErrPathEscapesBase = errors.New("anythingllm: path escapes base url")
)

// Error is the single error type returned by the client.
// StatusCode and Body are set whenever a response was received.
type Error struct {
	Kind       Kind
	Method     string
	URL        string
	StatusCode int
	Body       string
	Attempts   int
	Err        error

	retryAfter time.Duration
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("anythingllm: ")
	b.WriteString(e.Kind.String())
	if e.Method != "" {
		b.WriteString(" " + e.Method)
	}
	if e.URL != "" {
		b.WriteString(" " + e.URL)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " status=%d", e.StatusCode)
	}
	if e.Attempts > 1 {
		fmt.Fprintf(&b, " attempts=%d", e.Attempts)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Body != "" {
		body := e.Body
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody] + "..."
		}
		b.WriteString(" body=")
		b.WriteString(body)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind, or one of
// the status sentinels (ErrNotFound, ErrRateLimited).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrAuthentication:
		return e.Kind == KindAuthentication
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrAPI:
		return e.Kind == KindAPI
	case ErrServer:
		return e.Kind == KindServer
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func configError(format string, args ...any) error {
	return &Error{Kind: KindConfiguration, Err: fmt.Errorf(format, args...)}
}
