package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")

	// Run-level categories. Adapters mark their failures with one of these so
	// callers can classify with errors.Is regardless of how deep the wrap is.
	ErrConfig    = errors.New("configuration error")
	ErrTransport = errors.New("transport error")
	ErrDecode    = errors.New("decode error")
	ErrIO        = errors.New("io error")
)

// ErrorTag returns the short diagnostic tag printed next to a fatal error.
func ErrorTag(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfig), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotFound):
		return "config"
	case errors.Is(err, ErrTransport):
		return "http"
	case errors.Is(err, ErrDecode):
		return "json"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return "error"
	}
}
