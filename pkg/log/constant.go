package log

const (
	// ModeProduction emits JSON-friendly, sampled output.
	ModeProduction = "production"
	// ModeDevelopment emits human readable output with stack traces on warn.
	ModeDevelopment = "development"

	// EncodingJSON selects the JSON encoder.
	EncodingJSON = "json"
	// EncodingConsole selects the console encoder.
	EncodingConsole = "console"

	// DefaultLevel is used when the configured level cannot be parsed.
	DefaultLevel = "info"
)

// ctxKey is the unexported type for context values owned by this package.
type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	subjectKey   ctxKey = "subject"
)
